package settings

type Config struct {
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Vector Vector `mapstructure:"vector" yaml:"vector"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Vector is the configuration for array workloads
type Vector struct {
	// MemoryLimit caps the storage bytes of each array; 0 means unlimited.
	MemoryLimit int `mapstructure:"memory_limit" yaml:"memory_limit" validate:"gte=0"`
	Elements    int `mapstructure:"elements" yaml:"elements" validate:"gt=0"`
	Workers     int `mapstructure:"workers" yaml:"workers" validate:"gt=0,lte=1024"`
	// Inserts and Removes are positional operations run after the appends.
	Inserts int `mapstructure:"inserts" yaml:"inserts" validate:"gte=0"`
	Removes int `mapstructure:"removes" yaml:"removes" validate:"gte=0,ltefield=Elements"`
}
