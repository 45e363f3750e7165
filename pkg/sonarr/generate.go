package sonarr

//go:generate mockgen -package mocks -destination mocks/mock_sonarr_client.go github.com/packarr/packarr/pkg/sonarr ClientInterface
