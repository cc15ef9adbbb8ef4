package main

import (
	"context"
	"flag"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/mstallmo/agentic-protos/proto"
)

// Walks every RPC of a running HelloService: greet, read the counter,
// apply a series of increments and print the resulting statistics.
func main() {
	addr := flag.String("addr", "localhost:50052", "server address")
	name := flag.String("name", "world", "name to greet")
	flag.Parse()

	conn, err := grpc.Dial(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", *addr, err)
	}
	defer conn.Close()
	client := pb.NewHelloServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hello, err := client.SayHello(ctx, &pb.HelloRequest{Name: *name})
	if err != nil {
		log.Fatalf("SayHello failed: %v", err)
	}
	log.Printf("Greeting received: %s", hello.GetMessage())

	initial, err := client.GetCounter(ctx, &pb.GetCounterRequest{})
	if err != nil {
		log.Fatalf("GetCounter failed: %v", err)
	}
	log.Printf("Current counter value: %d", initial.GetValue())

	for _, amount := range []int64{1, 2, 5, 10} {
		resp, err := client.IncrementCounter(ctx, &pb.IncrementCounterRequest{IncrementBy: amount})
		if err != nil {
			log.Fatalf("IncrementCounter failed: %v", err)
		}
		log.Printf("Counter incremented by %d, new value: %d", amount, resp.GetValue())
		time.Sleep(100 * time.Millisecond)
	}

	stats, err := client.GetCounterStats(ctx, &pb.GetCounterStatsRequest{})
	if err != nil {
		log.Fatalf("GetCounterStats failed: %v", err)
	}
	if stats.GetFound() {
		log.Printf("Counter stats: value=%d increments=%d avg=%.2f highest=%d",
			stats.GetValue(), stats.GetTotalIncrements(),
			stats.GetAverageIncrement(), stats.GetHighestValue())
	}

	all, err := client.ListCounters(ctx, &pb.ListCountersRequest{})
	if err != nil {
		log.Fatalf("ListCounters failed: %v", err)
	}
	log.Printf("Found %d counters:", len(all.GetCounters()))
	for _, c := range all.GetCounters() {
		log.Printf("  - %s: %d", c.GetId(), c.GetValue())
	}
}
