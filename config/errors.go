package config

import "fmt"

type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config: %s", e.reason)
}
