package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Sequences sequenceSchema   `toml:"sequences"`
	Elevators []elevatorSchema `toml:"elevators"`
	Demands   []demandSchema   `toml:"demands"`
	History   []historySchema  `toml:"history"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported store schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// sequenceSchema records the last id handed out per table so ids are never
// reused after a delete.
type sequenceSchema struct {
	Elevator int64 `toml:"elevator"`
	Demand   int64 `toml:"demand"`
	History  int64 `toml:"history"`
}

type elevatorSchema struct {
	ID       int64 `toml:"id"`
	MinLevel int   `toml:"min_level"`
	MaxLevel int   `toml:"max_level"`
}

type demandSchema struct {
	ID         int64  `toml:"id"`
	ElevatorID int64  `toml:"elevator_id"`
	Level      int    `toml:"level"`
	CreatedAt  string `toml:"created_at"`
}

type historySchema struct {
	ID         int64 `toml:"id"`
	ElevatorID int64 `toml:"elevator_id"`
	WeekDay    int   `toml:"week_day"`
	Hour       int   `toml:"hour"`
	Minute     int   `toml:"minute"`
	Second     int   `toml:"second"`
	Level      int   `toml:"level"`
}
