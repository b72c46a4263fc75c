// Package agent probes a remote replication agent over the standard gRPC
// health protocol.
package agent

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const probeTimeout = 5 * time.Second

// Prober holds a client connection to the agent's health endpoint.
type Prober struct {
	conn   *grpc.ClientConn
	client grpc_health_v1.HealthClient
}

// NewProber dials the agent address. The connection is lazy; failures
// surface on the first probe.
func NewProber(address string) (*Prober, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial replication agent: %w", err)
	}
	return &Prober{
		conn:   conn,
		client: grpc_health_v1.NewHealthClient(conn),
	}, nil
}

// Probe reports whether the agent answers the health check as SERVING. An
// unavailable endpoint is "not serving" rather than an error so the caller's
// severity mapping stays in one place.
func (p *Prober) Probe(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := p.client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			return false, nil
		}
		return false, fmt.Errorf("agent health check failed: %w", err)
	}
	return resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING, nil
}

// Close releases the client connection.
func (p *Prober) Close() error {
	return p.conn.Close()
}
