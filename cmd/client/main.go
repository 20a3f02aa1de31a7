package main

import (
	"ChordDHT/internal/client"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/peterh/liner"
)

func main() {
	// CLI flags
	addr := flag.String("addr", "bootstrap:4000", "Address of the chord node (entry point)")
	timeout := flag.Duration("timeout", 5*time.Second, "Request timeout (e.g., 5s)")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Connect to initial node
	api, conn, err := client.Connect(*addr)
	if err != nil {
		log.Fatalf("Failed to connect to node at %s: %v", *addr, err)
	}
	defer conn.Close()

	currentAddr := *addr
	fmt.Printf("Chord interactive client. Connected to %s\n", currentAddr)
	fmt.Println("Available commands: put/get/delete/hash-table/finger-table/lookup/disconnect-chord-node/use/exit")

	// Setup liner shell
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(fmt.Sprintf("chord[%s]> ", currentAddr))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("Aborted")
				continue
			}
			break
		}
		line.AppendHistory(input)

		args := strings.Fields(strings.TrimSpace(input))
		if len(args) == 0 {
			continue
		}
		cmd := args[0]

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)

		switch cmd {

		case "put":
			if len(args) < 3 {
				fmt.Println("Usage: put <key> <value>")
				cancel()
				continue
			}
			key, value := args[1], args[2]
			delay, err := client.Put(ctx, api, key, value)
			if err != nil {
				fmt.Printf("Put failed (%v) | latency=%s\n", err, delay)
			} else {
				fmt.Printf("Put succeeded (key=%s, value=%s) | latency=%s\n", key, value, delay)
			}

		case "get":
			if len(args) < 2 {
				fmt.Println("Usage: get <key>")
				cancel()
				continue
			}
			key := args[1]
			val, found, delay, err := client.Get(ctx, api, key)
			switch {
			case err != nil:
				fmt.Printf("Get failed: %v | latency=%s\n", err, delay)
			case !found:
				fmt.Printf("Key not found: %s | latency=%s\n", key, delay)
			default:
				fmt.Printf("Get succeeded (key=%s, value=%s) | latency=%s\n", key, val, delay)
			}

		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <key>")
				cancel()
				continue
			}
			key := args[1]
			delay, err := client.Delete(ctx, api, key)
			switch err {
			case nil:
				fmt.Printf("Delete succeeded (key=%s) | latency=%s\n", key, delay)
			case client.ErrNotFound:
				fmt.Printf("Key not found: %s | latency=%s\n", key, delay)
			default:
				fmt.Printf("Delete failed: %v | latency=%s\n", err, delay)
			}

		case "hash-table":
			resp, delay, err := client.GetHashTable(ctx, api)
			if err != nil {
				fmt.Printf("GetHashTable failed: %v | latency=%s\n", err, delay)
				cancel()
				continue
			}
			fmt.Printf("Stored entries (count=%d) | latency=%s\n", len(resp.Entries), delay)
			for _, e := range resp.Entries {
				fmt.Printf("  - key=%s | value=%s\n", e.Key, e.Value)
			}

		case "finger-table":
			rt, delay, err := client.GetFingerTable(ctx, api)
			if err != nil {
				fmt.Printf("GetFingerTable failed: %v | latency=%s\n", err, delay)
				cancel()
				continue
			}
			fmt.Println("Finger table:")
			fmt.Printf("  Self: %x (%s)\n", rt.SelfId, rt.SelfAddr)
			if rt.PredecessorAddr != "" {
				fmt.Printf("  Predecessor: %x (%s)\n", rt.PredecessorId, rt.PredecessorAddr)
			}
			for _, f := range rt.Fingers {
				fmt.Printf("    [%d] start=%x -> %x (%s)\n", f.Index, f.Start, f.NodeId, f.NodeAddr)
			}
			fmt.Printf("Latency: %s\n", delay)

		case "lookup":
			if len(args) < 2 {
				fmt.Println("Usage: lookup <key>")
				cancel()
				continue
			}
			key := args[1]
			resp, delay, err := client.Lookup(ctx, api, key)
			if err != nil {
				fmt.Printf("Lookup failed: %v | latency=%s\n", err, delay)
			} else {
				fmt.Printf("Lookup result: owner=%x (%s) | latency=%s\n",
					resp.NodeId, resp.NodeAddr, delay)
			}

		case "disconnect-chord-node":
			delay, err := client.Disconnect(ctx, api)
			if err != nil {
				fmt.Printf("Disconnect failed: %v | latency=%s\n", err, delay)
			} else {
				fmt.Printf("Node disconnected cleanly | latency=%s\n", delay)
			}

		case "use":
			if len(args) < 2 {
				fmt.Println("Usage: use <addr>")
				cancel()
				continue
			}
			newAddr := args[1]
			newClient, newConn, err := client.Connect(newAddr)
			if err != nil {
				fmt.Printf("Failed to connect to %s: %v\n", newAddr, err)
				cancel()
				continue
			}
			conn.Close()
			api = newClient
			conn = newConn
			currentAddr = newAddr
			fmt.Printf("Switched connection to %s\n", currentAddr)

		case "exit", "quit":
			fmt.Println("Bye!")
			cancel()
			return

		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}

		cancel()
	}
}
