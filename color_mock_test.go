package tcs3472x

import (
	"context"
	"fmt"
	"testing"
)

func TestMockColorSensor_StaticSample(t *testing.T) {
	sensor := NewMockColorSensor(func(ctx context.Context) (ColorSample, error) {
		return ColorSample{Clear: 1024, Red: 300, Green: 400, Blue: 324}, nil
	})

	ctx := context.Background()
	sample, err := sensor.GetAllColors(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Clear != 1024 {
		t.Errorf("expected clear 1024, got %d", sample.Clear)
	}

	red, err := sensor.GetRed(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if red != 300 {
		t.Errorf("expected red 300, got %d", red)
	}
}

func TestMockColorSensor_DynamicBehavior(t *testing.T) {
	callCount := uint16(0)
	sensor := NewMockColorSensor(func(ctx context.Context) (ColorSample, error) {
		callCount++
		return ColorSample{Clear: callCount * 100}, nil
	})

	ctx := context.Background()
	first, err := sensor.GetClear(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 100 {
		t.Errorf("first call: expected 100, got %d", first)
	}
	second, err := sensor.GetClear(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 200 {
		t.Errorf("second call: expected 200, got %d", second)
	}
}

func TestMockColorSensor_ErrorHandling(t *testing.T) {
	sensor := NewMockColorSensor(func(ctx context.Context) (ColorSample, error) {
		return ColorSample{}, fmt.Errorf("sensor malfunction")
	})

	_, err := sensor.GetAllColors(context.Background())
	if err == nil {
		t.Fatal("expected an error, got none")
	}
}
