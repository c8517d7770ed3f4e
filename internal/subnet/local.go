package subnet

import (
	"errors"
	"net"

	"github.com/jackpal/gateway"
)

// reports whether ip is assigned to one of the local interfaces
func hasInterfaceAddr(ip net.IP) bool {
	interfaces, err := net.Interfaces()

	if err != nil {
		return false
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ifaceIP, _, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ifaceIP.Equal(ip) {
				return true
			}
		}
	}

	return false
}

// outboundIP returns the preferred outbound ip of this machine
func outboundIP() (net.IP, error) {
	target := "8.8.8.8"

	if gw, err := gateway.DiscoverGateway(); err == nil {
		target = gw.String()
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", target+":80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP.To4(), nil
}

// LocalPrefix returns the /24 prefix of this machine's outbound IPv4 address
func LocalPrefix() (Prefix, error) {
	ip, err := outboundIP()

	if err != nil {
		return "", err
	}

	if ip == nil || !hasInterfaceAddr(ip) {
		return "", errors.New("failed to find local IPv4 address")
	}

	return ParsePrefix(ip.String())
}
