package domain

import "io"

// SampleReader интерфейс для чтения выборки из файла
type SampleReader interface {
	ReadSamples(path string) (Samples, error)
}

// TableWriter интерфейс для вывода таблицы
type TableWriter interface {
	WriteTable(w io.Writer, table Table) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
