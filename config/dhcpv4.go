package config

const (
	DefaultPoolSize        = 1024
	DefaultRefreshInterval = 1000
	DefaultFlushBatch      = 10000
	DefaultStatsRate       = 1
)

type DhcpV4Options struct {
	// Workers == 0 lets the caller pick a count, usually two per logical core.
	Workers int

	PoolSize        int
	RefreshInterval int
	FlushBatch      int

	MaxLifetime int
	StatsRate   int
}

func NewDhcpV4Options() *DhcpV4Options {
	return &DhcpV4Options{
		PoolSize:        DefaultPoolSize,
		RefreshInterval: DefaultRefreshInterval,
		FlushBatch:      DefaultFlushBatch,
		StatsRate:       DefaultStatsRate,
	}
}

func (o *DhcpV4Options) HammerType() string {
	return "dhcpv4"
}
