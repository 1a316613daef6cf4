//go:generate mockgen -source=../opportunity_repository.go -destination=./mock_opportunity_repository.go -package=mocks
//go:generate mockgen -source=../application_repository.go -destination=./mock_application_repository.go -package=mocks
//go:generate mockgen -source=../user_repository.go        -destination=./mock_user_repository.go        -package=mocks
//go:generate mockgen -source=../source_policy.go          -destination=./mock_source_policy.go          -package=mocks
//go:generate mockgen -source=../password_hasher.go        -destination=./mock_password_hasher.go        -package=mocks
//go:generate mockgen -source=../logger.go                 -destination=./mock_logger.go                 -package=mocks
//go:generate mockgen -source=../message_consumer.go       -destination=./mock_message_consumer.go       -package=mocks
//go:generate mockgen -source=../opportunity_service.go    -destination=./mock_opportunity_service.go    -package=mocks

package mocks
