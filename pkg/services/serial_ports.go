package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const serialPortsPath = "/api/serial-ports"

// SerialPortService manages meter-to-port bindings.
type SerialPortService struct {
	client *apiclient.Client
}

func (s *SerialPortService) List(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, serialPortsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return raw, nil
}

func (s *SerialPortService) Update(ctx context.Context, id int64, cfg *models.SerialPortConfig) (*models.SerialPortConfig, error) {
	var out models.SerialPortConfig
	if err := s.client.PutJSON(ctx, idPath(serialPortsPath, id), cfg, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to update serial port: %w", err)
	}
	return &out, nil
}
