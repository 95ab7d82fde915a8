package grpcserver

type Config struct {
	Bind string `yaml:"bind"`
	// Port 0 disables the gRPC listener.
	Port uint16 `yaml:"port"`
}
