package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/mstallmo/agentic-protos/proto"
	"github.com/mstallmo/agentic-protos/src/database"
	"github.com/mstallmo/agentic-protos/src/util"
)

// HelloServiceServer is the gRPC facade over the counter store. It
// holds no state of its own beyond the injected store handle.
type HelloServiceServer struct {
	pb.UnimplementedHelloServiceServer
	db      *database.Database
	metrics *Metrics
}

func NewHelloServiceServer(db *database.Database, metrics *Metrics) *HelloServiceServer {
	return &HelloServiceServer{db: db, metrics: metrics}
}

func (s *HelloServiceServer) SayHello(ctx context.Context, req *pb.HelloRequest) (*pb.HelloResponse, error) {
	s.metrics.requestsTotal.WithLabelValues("SayHello").Inc()
	log.Printf("Got a greeting request from: %s", req.GetName())

	return &pb.HelloResponse{
		Message: fmt.Sprintf("Hello %s!", req.GetName()),
	}, nil
}

func (s *HelloServiceServer) GetCounter(ctx context.Context, req *pb.GetCounterRequest) (*pb.GetCounterResponse, error) {
	s.metrics.requestsTotal.WithLabelValues("GetCounter").Inc()

	value, err := s.timedGet(ctx, database.MainCounterID)
	if err != nil {
		s.metrics.requestErrors.WithLabelValues("GetCounter").Inc()
		log.Printf("Database error: %v", err)
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	s.metrics.mainCounterValue.Set(float64(value))

	return &pb.GetCounterResponse{Value: value}, nil
}

func (s *HelloServiceServer) IncrementCounter(ctx context.Context, req *pb.IncrementCounterRequest) (*pb.IncrementCounterResponse, error) {
	s.metrics.requestsTotal.WithLabelValues("IncrementCounter").Inc()
	log.Printf("Incrementing counter by: %d", req.GetIncrementBy())

	start := time.Now()
	newValue, err := s.db.Increment(ctx, database.MainCounterID, req.GetIncrementBy())
	s.metrics.storeLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.requestErrors.WithLabelValues("IncrementCounter").Inc()
		log.Printf("Database error: %v", err)
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	s.metrics.incrementsApplied.Inc()
	s.metrics.mainCounterValue.Set(float64(newValue))
	log.Printf("Counter incremented, new value: %d", newValue)

	if stats, err := s.db.Stats(ctx, database.MainCounterID); err == nil {
		log.Printf("Counter stats: increments=%d, avg=%.2f, highest=%d",
			stats.TotalIncrements, stats.AverageIncrement, stats.HighestValue)
	}

	return &pb.IncrementCounterResponse{Value: newValue}, nil
}

func (s *HelloServiceServer) GetCounterStats(ctx context.Context, req *pb.GetCounterStatsRequest) (*pb.GetCounterStatsResponse, error) {
	s.metrics.requestsTotal.WithLabelValues("GetCounterStats").Inc()

	stats, err := s.db.Stats(ctx, database.MainCounterID)
	if errors.Is(err, util.ErrCounterNotFound) {
		// Missing is a normal outcome, not an RPC error.
		return &pb.GetCounterStatsResponse{Found: false}, nil
	}
	if err != nil {
		s.metrics.requestErrors.WithLabelValues("GetCounterStats").Inc()
		log.Printf("Database error: %v", err)
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}

	return &pb.GetCounterStatsResponse{
		Found:            true,
		Value:            stats.Value,
		TotalIncrements:  stats.TotalIncrements,
		AverageIncrement: stats.AverageIncrement,
		HighestValue:     stats.HighestValue,
	}, nil
}

func (s *HelloServiceServer) ListCounters(ctx context.Context, req *pb.ListCountersRequest) (*pb.ListCountersResponse, error) {
	s.metrics.requestsTotal.WithLabelValues("ListCounters").Inc()

	counters, err := s.db.List(ctx)
	if err != nil {
		s.metrics.requestErrors.WithLabelValues("ListCounters").Inc()
		log.Printf("Database error: %v", err)
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}

	resp := &pb.ListCountersResponse{}
	for _, c := range counters {
		resp.Counters = append(resp.Counters, &pb.CounterEntry{
			Id:    c.ID,
			Value: c.Value,
		})
	}
	return resp, nil
}

func (s *HelloServiceServer) timedGet(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	defer func() {
		s.metrics.storeLatency.Observe(time.Since(start).Seconds())
	}()
	return s.db.Get(ctx, id)
}

// StartServer serves the facade on addr until the listener closes.
func StartServer(s *HelloServiceServer, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	server := grpc.NewServer()
	pb.RegisterHelloServiceServer(server, s)

	return server.Serve(lis)
}
