package tcs3472x

import (
	"context"
)

// ColorBehaviorFunc defines the function signature for color sensor behavior.
// It returns one RGBC sample or an error.
type ColorBehaviorFunc func(ctx context.Context) (ColorSample, error)

// MockColorSensor is a mock implementation of the color sensor surface that
// uses a behavior function to produce results without requiring any hardware.
type MockColorSensor struct {
	behavior ColorBehaviorFunc
}

// NewMockColorSensor creates a new mock color sensor with the given behavior
// function. The behavior function is called whenever a readout is invoked.
//
// Example usage:
//
//	// Static sample
//	sensor := NewMockColorSensor(func(ctx context.Context) (ColorSample, error) {
//		return ColorSample{Clear: 1024, Red: 300, Green: 400, Blue: 324}, nil
//	})
//
//	// Error simulation
//	sensor := NewMockColorSensor(func(ctx context.Context) (ColorSample, error) {
//		return ColorSample{}, fmt.Errorf("sensor malfunction")
//	})
func NewMockColorSensor(behavior ColorBehaviorFunc) *MockColorSensor {
	return &MockColorSensor{
		behavior: behavior,
	}
}

// GetAllColors returns a sample produced by the behavior function.
func (m *MockColorSensor) GetAllColors(ctx context.Context) (ColorSample, error) {
	return m.behavior(ctx)
}

// GetClear returns the clear channel of a behavior-produced sample.
func (m *MockColorSensor) GetClear(ctx context.Context) (uint16, error) {
	sample, err := m.behavior(ctx)
	return sample.Clear, err
}

// GetRed returns the red channel of a behavior-produced sample.
func (m *MockColorSensor) GetRed(ctx context.Context) (uint16, error) {
	sample, err := m.behavior(ctx)
	return sample.Red, err
}

// GetGreen returns the green channel of a behavior-produced sample.
func (m *MockColorSensor) GetGreen(ctx context.Context) (uint16, error) {
	sample, err := m.behavior(ctx)
	return sample.Green, err
}

// GetBlue returns the blue channel of a behavior-produced sample.
func (m *MockColorSensor) GetBlue(ctx context.Context) (uint16, error) {
	sample, err := m.behavior(ctx)
	return sample.Blue, err
}
