package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
}
