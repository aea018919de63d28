package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockContractResolver is a mock implementation of ContractResolver
type MockContractResolver struct {
	mock.Mock
}

func (m *MockContractResolver) ResolveDeployedContract(ctx context.Context, identity domain.ContractIdentity, address string) (*domain.ContractHandle, error) {
	args := m.Called(ctx, identity, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractHandle), args.Error(1)
}

// MockNetworkIdentifier is a mock implementation of NetworkIdentifier
type MockNetworkIdentifier struct {
	mock.Mock
}

func (m *MockNetworkIdentifier) Current(ctx context.Context) (domain.NetworkID, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.NetworkID), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) NetworkNames() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, domain.NetworkID, error) {
	args := m.Called(ctx, name)
	var network *config.Network
	if args.Get(0) != nil {
		network = args.Get(0).(*config.Network)
	}
	return network, args.Get(1).(domain.NetworkID), args.Error(2)
}

// MockContractDeployer is a mock implementation of ContractDeployer
type MockContractDeployer struct {
	mock.Mock
}

func (m *MockContractDeployer) Deploy(ctx context.Context, identity domain.ContractIdentity, params []string) (*usecase.DeployedContract, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DeployedContract), args.Error(1)
}

func (m *MockContractDeployer) Transact(ctx context.Context, identity domain.ContractIdentity, address, method string, params []string) (string, error) {
	args := m.Called(ctx, identity, address, method, params)
	return args.String(0), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
