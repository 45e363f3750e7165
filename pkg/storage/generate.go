package storage

//go:generate mockgen -package mocks -destination mocks/mock_storage.go github.com/packarr/packarr/pkg/storage Storage
