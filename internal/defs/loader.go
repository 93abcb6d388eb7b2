// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEnemyDefinitions reads an enemy balance file and overlays it on EnemyLibrary.
// Каждый элемент списка обязан содержать type; остальные поля необязательны
// и заменяют только указанные значения.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	lib, err := ParseEnemyDefinitions(file, EnemyLibrary)
	if err != nil {
		return err
	}
	EnemyLibrary = lib

	log.Printf("Loaded %d enemy definitions from %s", len(EnemyLibrary), path)
	return nil
}

// ParseEnemyDefinitions overlays YAML data on a copy of base and returns the result.
func ParseEnemyDefinitions(data []byte, base map[EnemyType]EnemyDefinition) (map[EnemyType]EnemyDefinition, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[EnemyType]EnemyDefinition, len(base))
	for k, v := range base {
		lib[k] = v
	}

	for i := range nodes {
		var head struct {
			Type EnemyType `yaml:"type"`
		}
		if err := nodes[i].Decode(&head); err != nil {
			return nil, fmt.Errorf("failed to decode enemy definition #%d: %w", i, err)
		}
		if head.Type == "" {
			return nil, fmt.Errorf("enemy definition #%d has no type", i)
		}

		def, ok := lib[head.Type]
		if !ok {
			def = EnemyDefinition{Type: head.Type}
		}
		if err := nodes[i].Decode(&def); err != nil {
			return nil, fmt.Errorf("failed to decode enemy definition %s: %w", head.Type, err)
		}
		if def.BaseHP <= 0 || def.Radius <= 0 {
			return nil, fmt.Errorf("enemy definition %s: base_hp and radius must be positive", head.Type)
		}
		lib[head.Type] = def
	}
	return lib, nil
}
