//go:generate mockgen -source=../broker_connection.go -destination=./mock_broker_connection.go -package=mocks
//go:generate mockgen -source=../error_strategy.go    -destination=./mock_error_strategy.go    -package=mocks
//go:generate mockgen -source=../producer.go          -destination=./mock_producer.go          -package=mocks
//go:generate mockgen -source=../poison_repository.go -destination=./mock_poison_repository.go -package=mocks
//go:generate mockgen -source=../attempt_cache.go     -destination=./mock_attempt_cache.go     -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks
//go:generate mockgen -source=../services.go          -destination=./mock_services.go          -package=mocks

package mocks
