// Package mocks contains generated mocks and test data helpers.
package mocks

//go:generate mockgen -source=../internal/journal/store/store.go -destination=mock_store.go -package=mocks
