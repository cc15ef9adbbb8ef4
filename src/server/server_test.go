package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/mstallmo/agentic-protos/proto"
	"github.com/mstallmo/agentic-protos/src/database"
)

func newTestClient(t *testing.T) (pb.HelloServiceClient, *database.Database) {
	t.Helper()

	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	pb.RegisterHelloServiceServer(srv, NewHelloServiceServer(db, NewMetrics()))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewHelloServiceClient(conn), db
}

func TestSayHello(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.SayHello(context.Background(), &pb.HelloRequest{Name: "Gopher"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Gopher!", resp.GetMessage())
}

func TestGetCounterInitialValue(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.GetCounter(context.Background(), &pb.GetCounterRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.GetValue())
}

func TestIncrementCounterSequence(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	expected := []int64{1, 3, 8, 18}
	for i, amount := range []int64{1, 2, 5, 10} {
		resp, err := client.IncrementCounter(ctx, &pb.IncrementCounterRequest{IncrementBy: amount})
		require.NoError(t, err)
		assert.Equal(t, expected[i], resp.GetValue())
	}

	get, err := client.GetCounter(ctx, &pb.GetCounterRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(18), get.GetValue())

	stats, err := client.GetCounterStats(ctx, &pb.GetCounterStatsRequest{})
	require.NoError(t, err)
	require.True(t, stats.GetFound())
	assert.Equal(t, int64(18), stats.GetValue())
	assert.Equal(t, int64(4), stats.GetTotalIncrements())
	assert.InDelta(t, 4.5, stats.GetAverageIncrement(), 1e-9)
	assert.Equal(t, int64(18), stats.GetHighestValue())
}

func TestListCounters(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.ListCounters(context.Background(), &pb.ListCountersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetCounters(), 1)
	assert.Equal(t, database.MainCounterID, resp.GetCounters()[0].GetId())
	assert.Equal(t, int64(0), resp.GetCounters()[0].GetValue())
}

func TestGetCounterStatsMissingCounter(t *testing.T) {
	client, db := newTestClient(t)
	ctx := context.Background()

	// Remove the seeded main counter so the store reports it absent.
	existed, err := db.Delete(ctx, database.MainCounterID)
	require.NoError(t, err)
	require.True(t, existed)

	stats, err := client.GetCounterStats(ctx, &pb.GetCounterStatsRequest{})
	require.NoError(t, err, "a missing counter is a normal outcome, not an RPC error")
	assert.False(t, stats.GetFound())
}

func TestStorageFailureReturnsInternal(t *testing.T) {
	client, db := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := client.IncrementCounter(ctx, &pb.IncrementCounterRequest{IncrementBy: 1})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = client.GetCounter(ctx, &pb.GetCounterRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))

	// Storage errors must not take the serving process down.
	resp, err := client.SayHello(ctx, &pb.HelloRequest{Name: "Gopher"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Gopher!", resp.GetMessage())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":50052", cfg.ListenAddress)
	assert.NotEmpty(t, cfg.MetricsAddress)
	assert.NotEmpty(t, cfg.DatabasePath)
}
