// Package membership defines the tuning configuration for a SWIM style
// cluster membership protocol. It only carries the parameters; the
// membership state machine, failure detector and gossip engine consume a
// Config at construction time and are implemented elsewhere.
package membership

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Default settings for a cluster on a LAN network.
const (
	DefaultSyncInterval              = time.Second * 30
	DefaultSyncTimeout               = time.Second * 3
	DefaultSuspicionMult             = 5
	DefaultRemovedMembersHistorySize = 42
	DefaultNamespace                 = "default"
)

// Default settings for a cluster on a WAN network (overrides the LAN
// settings).
const (
	DefaultWANSuspicionMult = 6
	DefaultWANSyncInterval  = time.Second * 60
)

// Default settings for a local cluster working over the loopback interface
// (overrides the LAN settings).
const (
	DefaultLocalSuspicionMult = 3
	DefaultLocalSyncInterval  = time.Second * 15
)

// Config contains the tuning parameters for the membership protocol.
//
// A Config is an immutable value. Each With* method returns a new Config
// with exactly one field replaced and leaves the receiver untouched, so a
// Config may be shared across goroutines without synchronization. No field
// is validated; the protocol engine rejects nonsensical values at the point
// of use.
type Config struct {
	// seedMembers are the addresses contacted to join the cluster. Order
	// and duplicates are preserved; addresses are opaque at this layer.
	seedMembers []string

	// syncInterval is the time between full membership sync rounds.
	syncInterval time.Duration

	// syncTimeout is the deadline for responses in a single sync round.
	syncTimeout time.Duration

	// suspicionMult scales a base interval into the time a non-responsive
	// member may dwell in the suspected state before being declared dead.
	suspicionMult int

	// removedMembersHistorySize is the number of recently removed members
	// remembered to suppress duplicate removal events.
	removedMembersHistorySize int

	// namespace scopes gossip traffic to one cluster among many sharing
	// the same infrastructure.
	namespace string
}

// DefaultConfig returns a Config with all fields at their defaults.
func DefaultConfig() Config {
	return Config{
		syncInterval:              DefaultSyncInterval,
		syncTimeout:               DefaultSyncTimeout,
		suspicionMult:             DefaultSuspicionMult,
		removedMembersHistorySize: DefaultRemovedMembersHistorySize,
		namespace:                 DefaultNamespace,
	}
}

// DefaultLANConfig returns a Config tuned for a cluster on a LAN network.
// The defaults are LAN tuned so this is the same as DefaultConfig.
func DefaultLANConfig() Config {
	return DefaultConfig()
}

// DefaultWANConfig returns a Config tuned for a cluster on a WAN network,
// where higher latency and loss require slower failure detection.
func DefaultWANConfig() Config {
	return DefaultConfig().
		WithSuspicionMult(DefaultWANSuspicionMult).
		WithSyncInterval(DefaultWANSyncInterval)
}

// DefaultLocalConfig returns a Config tuned for a cluster working over the
// loopback interface, where detection can be more aggressive.
func DefaultLocalConfig() Config {
	return DefaultConfig().
		WithSuspicionMult(DefaultLocalSuspicionMult).
		WithSyncInterval(DefaultLocalSyncInterval)
}

// SeedMembers returns a copy of the configured seed member addresses.
func (c Config) SeedMembers() []string {
	seedMembers := make([]string, len(c.seedMembers))
	copy(seedMembers, c.seedMembers)
	return seedMembers
}

// WithSeedMembers returns a new Config whose seed members are a copy of the
// given addresses. Mutating the given slice afterwards does not affect the
// returned Config.
func (c Config) WithSeedMembers(seedMembers ...string) Config {
	seeds := make([]string, len(seedMembers))
	copy(seeds, seedMembers)
	c.seedMembers = seeds
	return c
}

// SyncInterval returns the time between membership sync rounds.
func (c Config) SyncInterval() time.Duration {
	return c.syncInterval
}

// WithSyncInterval returns a new Config with the given sync interval.
func (c Config) WithSyncInterval(syncInterval time.Duration) Config {
	c.syncInterval = syncInterval
	return c
}

// SyncTimeout returns the per-round response deadline.
func (c Config) SyncTimeout() time.Duration {
	return c.syncTimeout
}

// WithSyncTimeout returns a new Config with the given sync timeout.
func (c Config) WithSyncTimeout(syncTimeout time.Duration) Config {
	c.syncTimeout = syncTimeout
	return c
}

// SuspicionMult returns the suspicion timeout multiplier.
func (c Config) SuspicionMult() int {
	return c.suspicionMult
}

// WithSuspicionMult returns a new Config with the given suspicion
// multiplier.
func (c Config) WithSuspicionMult(suspicionMult int) Config {
	c.suspicionMult = suspicionMult
	return c
}

// RemovedMembersHistorySize returns the retention count for recently
// removed members.
func (c Config) RemovedMembersHistorySize() int {
	return c.removedMembersHistorySize
}

// WithRemovedMembersHistorySize returns a new Config with the given removed
// members history size.
func (c Config) WithRemovedMembersHistorySize(removedMembersHistorySize int) Config {
	c.removedMembersHistorySize = removedMembersHistorySize
	return c
}

// Namespace returns the namespace scoping gossip traffic.
func (c Config) Namespace() string {
	return c.namespace
}

// WithNamespace returns a new Config with the given namespace.
func (c Config) WithNamespace(namespace string) Config {
	c.namespace = namespace
	return c
}

// Equal reports whether the two configs have equal values for every field.
// Seed members must match in order.
func (c Config) Equal(o Config) bool {
	if len(c.seedMembers) != len(o.seedMembers) {
		return false
	}
	for i, addr := range c.seedMembers {
		if addr != o.seedMembers[i] {
			return false
		}
	}
	return c.syncInterval == o.syncInterval &&
		c.syncTimeout == o.syncTimeout &&
		c.suspicionMult == o.suspicionMult &&
		c.removedMembersHistorySize == o.removedMembersHistorySize &&
		c.namespace == o.namespace
}

// String returns a field by field representation for diagnostics.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config[seedMembers=[%s], syncInterval=%s, syncTimeout=%s, suspicionMult=%d, namespace='%s', removedMembersHistorySize=%d]",
		strings.Join(c.seedMembers, ", "),
		c.syncInterval,
		c.syncTimeout,
		c.suspicionMult,
		c.namespace,
		c.removedMembersHistorySize,
	)
}

// MarshalLogObject adds every field to the encoder so a Config can be
// logged with zap.Object.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	err := enc.AddArray("seedMembers", zapcore.ArrayMarshalerFunc(
		func(enc zapcore.ArrayEncoder) error {
			for _, addr := range c.seedMembers {
				enc.AppendString(addr)
			}
			return nil
		},
	))
	if err != nil {
		return err
	}
	enc.AddDuration("syncInterval", c.syncInterval)
	enc.AddDuration("syncTimeout", c.syncTimeout)
	enc.AddInt("suspicionMult", c.suspicionMult)
	enc.AddString("namespace", c.namespace)
	enc.AddInt("removedMembersHistorySize", c.removedMembersHistorySize)
	return nil
}
