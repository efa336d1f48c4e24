package proto

type Proto uint8

const (
	Unknown Proto = iota
	HTTP11
	// HTTP2 is recognized as a request line token only. The server speaks
	// line-based HTTP/1.x framing regardless of what the client announced.
	HTTP2
)

var List = []Proto{HTTP11, HTTP2}

func (p Proto) String() string {
	lut := [...]string{HTTP11: "HTTP/1.1", HTTP2: "HTTP/2"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

// Parse recognizes a protocol by its token, exact and case-sensitive.
func Parse(str string) Proto {
	switch str {
	case "HTTP/1.1":
		return HTTP11
	case "HTTP/2":
		return HTTP2
	}

	return Unknown
}
