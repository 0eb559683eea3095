// Package models provides the data structures used throughout the application.
package models

// CategoryConfig holds the keyword rules of one label in categories.yaml.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of categories.yaml.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
