package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cschleiden/go-cancel/cancellation"
	"github.com/cschleiden/go-cancel/executor"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func main() {
	r := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("go-cancel sample"),
		attribute.String("environment", "sample"),
	)

	stdoutexp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		panic(err)
	}

	tp := trace.NewTracerProvider(
		trace.WithSyncer(stdoutexp),
		trace.WithResource(r),
	)
	defer tp.Shutdown(context.Background())

	// Cancel the run on Ctrl+C
	canceler := cancellation.NewCanceler()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		fmt.Println("cancellation requested")
		canceler.Cancel()
	}()

	c := cancellation.New(
		cancellation.WithDeadline(time.Now().Add(30*time.Second)),
		cancellation.WithFlags(canceler.Flag()),
	)

	e := executor.New(executor.WithTracerProvider(tp))

	var steps []executor.Step
	for i := 1; i <= 5; i++ {
		steps = append(steps, executor.Step{
			Name: fmt.Sprintf("step-%d", i),
			Run: func(ctx context.Context) error {
				fmt.Printf("running step %d\n", i)
				time.Sleep(time.Second)
				return nil
			},
		})
	}

	result, err := e.Run(context.Background(), c, steps)
	if err != nil {
		fmt.Println("run ended early:", err)
	}

	fmt.Printf("executed %d steps in %v\n", result.Executed, result.Duration)
}
