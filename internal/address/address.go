package address

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

type Address struct {
	Host string
	Port uint16
}

// Parse splits "host:port" into an Address. Both parts are optional: empty
// input, a bare host or a bare ":port" leave the missing part empty for the
// caller to fill in with defaults. IPv6 literals must be bracketed when a port
// is attached.
func Parse(addr string) (Address, error) {
	if len(addr) == 0 {
		return Address{}, nil
	}

	if strings.HasPrefix(addr, "[") && strings.HasSuffix(addr, "]") {
		return Address{Host: addr[1 : len(addr)-1]}, nil
	}

	if !strings.Contains(addr, ":") {
		return Address{Host: addr}, nil
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return Address{}, err
	}

	if len(portStr) == 0 {
		return Address{Host: host}, nil
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("bad port %q: %s", portStr, err)
	}

	return Address{Host: host, Port: uint16(port)}, nil
}

// Fill substitutes empty parts with the passed defaults.
func (a Address) Fill(host string, port uint16) Address {
	if len(a.Host) == 0 {
		a.Host = host
	}
	if a.Port == 0 {
		a.Port = port
	}

	return a
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}
