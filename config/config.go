package config

type (
	NET struct {
		// Address is the local interface to bind to.
		Address string
		// Port to listen on.
		Port uint16
		// ReadBufferSize is the size of the buffered reader placed on top of the
		// socket. It's a sizing knob only: no request line, header or body length
		// limit is enforced anywhere in the library. A client is free to stream an
		// arbitrarily long request line and the parser will keep reading it, so
		// deployments facing untrusted peers must put a bounded reader in front.
		ReadBufferSize int
	}

	Headers struct {
		// Prealloc is the initial capacity of the headers storage.
		Prealloc int
	}
)

// Config holds tunables used across the library. Modify defaults (returned via
// Default()) instead of instantiating it manually, otherwise zero values will be
// substituted by default ones anyway.
type Config struct {
	NET     NET
	Headers Headers
}

func Default() *Config {
	return &Config{
		NET: NET{
			Address:        "127.0.0.1",
			Port:           8080,
			ReadBufferSize: 4096,
		},
		Headers: Headers{
			Prealloc: 8,
		},
	}
}

// Fill replaces zero values of the passed config with defaults.
func Fill(custom *Config) *Config {
	if custom == nil {
		return Default()
	}

	defaults := Default()
	custom.NET.Address = customOrDefault(custom.NET.Address, defaults.NET.Address)
	custom.NET.Port = customOrDefault(custom.NET.Port, defaults.NET.Port)
	custom.NET.ReadBufferSize = customOrDefault(custom.NET.ReadBufferSize, defaults.NET.ReadBufferSize)
	custom.Headers.Prealloc = customOrDefault(custom.Headers.Prealloc, defaults.Headers.Prealloc)

	return custom
}

func customOrDefault[T comparable](custom, defaultVal T) T {
	var zero T
	if custom == zero {
		return defaultVal
	}

	return custom
}
