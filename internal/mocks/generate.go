// Package mocks provides gomock implementations of the record server gateways.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	models := mocks.NewMockModelGateway(ctrl)
//	models.EXPECT().ListModels(gomock.Any(), gomock.Any()).Return(nil, nil)
package mocks

// Generate mocks for the gateway interfaces in internal/ports:
// AuthGateway, ShoeGateway, ModelGateway, ChartGateway, AccountGateway, BackupGateway, UpstreamPinger
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=gateways_mock.go github.com/shoetrack/shoetrack-ui/internal/ports AuthGateway,ShoeGateway,ModelGateway,ChartGateway,AccountGateway,BackupGateway,UpstreamPinger
