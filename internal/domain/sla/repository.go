package sla

import "context"

type ConfigRepository interface {
	GetByType(ctx context.Context, slaType SLAType) (*Config, error)
	Upsert(ctx context.Context, config *Config) error
	List(ctx context.Context) ([]*Config, error)
}

type TrustScoreLogRepository interface {
	// SaveIfAbsent inserts the log unless an entry with the same source ID
	// already exists. It reports whether the insert happened.
	SaveIfAbsent(ctx context.Context, log *TrustScoreLog) (bool, error)
	ExistsBySourceID(ctx context.Context, sourceID string) (bool, error)
	ListByOperator(ctx context.Context, operatorID uint) ([]*TrustScoreLog, error)
}
