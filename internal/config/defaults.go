package config

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "localhost",
			Port:      5000,
			TimeoutMS: 30000,
		},
		Model: ModelConfig{
			Default: "vgg16",
		},
		Picker: PickerConfig{
			Dir:        ".",
			Extensions: []string{"png", "jpg", "jpeg", "bmp", "tiff"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}
