package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvAdminUsers        = "ADMIN_USERS"
	EnvCatalogSeedPath   = "CATALOG_SEED_PATH"
	EnvDeliveryQueueSize = "DELIVERY_QUEUE_SIZE"
)
