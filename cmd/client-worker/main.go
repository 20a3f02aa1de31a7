package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"log"
	"math/big"
	"time"

	"ChordDHT/internal/client"
)

func randomKey(bytes int) string {
	b := make([]byte, bytes)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func pickRandom(nodes []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(nodes))))
	return nodes[n.Int64()]
}

// fetchPeers connects to addr, pulls its finger table, and returns every
// address it can reach from it (self, predecessor, fingers).
func fetchPeers(addr string, timeout time.Duration) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	api, conn, err := client.Connect(addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rt, _, err := client.GetFingerTable(ctx, api)
	if err != nil {
		return nil, err
	}

	var nodes []string
	if rt.SelfAddr != "" {
		nodes = append(nodes, rt.SelfAddr)
	}
	if rt.PredecessorAddr != "" {
		nodes = append(nodes, rt.PredecessorAddr)
	}
	for _, f := range rt.Fingers {
		if f.NodeAddr != "" {
			nodes = append(nodes, f.NodeAddr)
		}
	}
	return nodes, nil
}

func main() {
	bootstrap := flag.String("bootstrap", "127.0.0.1:5000", "bootstrap node address")
	keyBytes := flag.Int("key-bytes", 16, "number of random bytes used for generated lookup keys")
	rate := flag.Float64("rate", 1.0, "lookup requests per second")
	timeout := flag.Duration("timeout", 2*time.Second, "per-request timeout")
	refresh := flag.Duration("refresh", 30*time.Second, "refresh peer list interval")
	flag.Parse()

	nodes, err := fetchPeers(*bootstrap, *timeout)
	if err != nil || len(nodes) == 0 {
		log.Fatalf("Failed to fetch peer list from bootstrap %s: %v", *bootstrap, err)
	}
	log.Printf("Bootstrap succeeded, discovered %d nodes", len(nodes))

	interval := time.Duration(float64(time.Second) / *rate)
	ticker := time.NewTicker(*refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n := pickRandom(nodes)
			newNodes, err := fetchPeers(n, *timeout)
			if err == nil && len(newNodes) > 0 {
				nodes = newNodes
				log.Printf("Refreshed peer list, now have %d nodes", len(nodes))
			}
		default:
			key := randomKey(*keyBytes)
			n := pickRandom(nodes)

			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			api, conn, err := client.Connect(n)
			if err != nil {
				log.Printf("dial %s failed: %v", n, err)
				cancel()
				time.Sleep(interval)
				continue
			}
			_, delay, err := client.Lookup(ctx, api, key)
			if err != nil {
				log.Printf("[lookup] key=%s via %s ERROR: %v latency=%s", key, n, err, delay)
			} else {
				log.Printf("[lookup] key=%s via %s OK latency=%s", key, n, delay)
			}
			conn.Close()
			cancel()

			time.Sleep(interval)
		}
	}
}
