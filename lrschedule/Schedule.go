// Package lrschedule implements learning-rate schedules as pure
// functions of the epoch index, wrapped so that they can be JSON
// serialized into configuration files.
package lrschedule

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Schedule computes the learning rate to use for the 0-indexed epoch,
// given the current learning rate. Schedules are stateless: the same
// epoch always yields the same rate.
type Schedule func(epoch int, lr float64) float64

// Type describes different types of Schedule that are available.
// Type is used to implement a basic type system of Schedules.
type Type string

// Available Schedule types
const (
	Cosine    Type = "CosineAnnealing"
	Constant  Type = "Constant"
	StepDecay Type = "StepDecay"
)

// Config implements a learning-rate schedule configuration and can be
// used to create the described Schedule.
type Config interface {
	// Create returns the Schedule that the Config describes
	Create() Schedule

	// Type returns the type of Schedule that is returned
	Type() Type
}

// LRSchedule wraps a Schedule together with its Config so that the
// pair can be JSON marshalled and unmarshalled.
type LRSchedule struct {
	schedule Schedule
	Type
	Config
}

// New returns a new LRSchedule described by the Config.
func New(c Config) *LRSchedule {
	s := &LRSchedule{Type: c.Type(), Config: c}
	s.schedule = c.Create()
	return s
}

// Schedule returns the wrapped Schedule.
func (s *LRSchedule) Schedule() Schedule { return s.schedule }

// String implements the fmt.Stringer interface
func (s *LRSchedule) String() string {
	return fmt.Sprintf("{%v Schedule: %v}", s.Type, s.Config)
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (s *LRSchedule) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(
		data,
		"Type",
		"Config",
		map[string]reflect.Type{
			string(Cosine):    reflect.TypeOf(CosineConfig{}),
			string(Constant):  reflect.TypeOf(ConstantConfig{}),
			string(StepDecay): reflect.TypeOf(StepDecayConfig{}),
		})
	if err != nil {
		return err
	}

	s.Type = typeName
	s.Config = config
	s.schedule = s.Config.Create()

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJsonField, valueJsonField string,
	customTypes map[string]reflect.Type) (Config, Type, error) {
	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", err
	}

	typeName, ok := m[typeJsonField].(string)
	if !ok {
		return nil, "", fmt.Errorf("unmarshalConfig: no %v field",
			typeJsonField)
	}
	var value Config
	ty, found := customTypes[typeName]
	if !found {
		return nil, "", fmt.Errorf("unmarshalConfig: unknown schedule "+
			"type %v", typeName)
	}
	value = reflect.New(ty).Interface().(Config)

	valueBytes, err := json.Marshal(m[valueJsonField])
	if err != nil {
		return nil, "", err
	}

	if err = json.Unmarshal(valueBytes, &value); err != nil {
		return nil, "", err
	}
	concreteValue := reflect.ValueOf(value).Elem().Interface().(Config)

	return concreteValue, Type(typeName), nil
}
