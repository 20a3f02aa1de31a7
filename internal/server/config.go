package server

import (
	"fmt"
	"net"
)

// interfaceIPs collects every usable IPv4 address from the machine's
// up, non-loopback interfaces.
func interfaceIPs() ([]net.IP, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var out []net.IP
	for _, iface := range ifaces {
		if (iface.Flags&net.FlagUp) == 0 || (iface.Flags&net.FlagLoopback) != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if ip4 := ip.To4(); ip4 != nil {
				out = append(out, ip4)
			}
		}
	}
	return out, nil
}

// pickIP selects the first local IPv4 address matching the mode:
// "private" wants an RFC1918 address, "public" wants anything else.
func pickIP(mode string) (net.IP, error) {
	ips, err := interfaceIPs()
	if err != nil {
		return nil, err
	}
	for _, ip := range ips {
		if (mode == "private") == isPrivateIP(ip) {
			return ip, nil
		}
	}
	return nil, fmt.Errorf("no suitable %s interface found", mode)
}

// isPrivateIP reports whether ip falls in one of the RFC1918 blocks.
func isPrivateIP(ip net.IP) bool {
	for _, block := range []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"} {
		_, cidr, _ := net.ParseCIDR(block)
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// Listen opens a TCP listener on bind:port and derives the advertised
// "host:port" other nodes should dial.
//
// With host unset, the advertised host is picked from the local
// interfaces per mode ("private" | "public"). A host that parses as an
// IP is validated against mode; a bare hostname (e.g. a container name)
// is accepted as-is, since Docker-style embedded DNS resolves it for
// peers. port 0 asks the kernel for a free port, and the advertised
// address carries whatever was actually bound.
func Listen(mode, bind, host string, port int) (net.Listener, string, error) {
	if bind == "" {
		bind = "0.0.0.0"
	}
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", bind, port))
	if err != nil {
		return nil, "", err
	}
	actualPort := ln.Addr().(*net.TCPAddr).Port

	switch {
	case host == "":
		ip, err := pickIP(mode)
		if err != nil {
			_ = ln.Close()
			return nil, "", err
		}
		host = ip.String()
	default:
		if ip := net.ParseIP(host); ip != nil {
			if mode == "private" && !isPrivateIP(ip) {
				_ = ln.Close()
				return nil, "", fmt.Errorf("host %s is not private but mode=private", host)
			}
			if mode == "public" && isPrivateIP(ip) {
				_ = ln.Close()
				return nil, "", fmt.Errorf("host %s is private but mode=public", host)
			}
		}
	}

	return ln, fmt.Sprintf("%s:%d", host, actualPort), nil
}
