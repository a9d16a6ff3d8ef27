package models

// Speaker is a delegate waiting for (or holding) the floor
type Speaker struct {
	Name            string `yaml:"name" json:"name"`
	Country         string `yaml:"country" json:"country"`
	AllottedSeconds int    `yaml:"allottedSeconds" json:"allottedSeconds"`
}
