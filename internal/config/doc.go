// Package config holds the tunables the tree builder and actuator pull
// their defaults from.
//
// menucli has no persistent state or config file: this package exists only
// so the walk/backoff constants live in one named place rather than as
// literals scattered across internal/tree and internal/actuate.
package config
