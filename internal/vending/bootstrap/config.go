package bootstrap

type VendingConfig struct {
	HttpPort          string
	AdminUsers        []string
	CatalogSeedPath   string
	DeliveryQueueSize int
}
