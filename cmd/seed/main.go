package main

import (
	"os"

	"gearshop/pkg/di"
	"gearshop/pkg/logger"
)

// seed ใส่ sample catalog แล้วจบ - สำหรับ setup dev environment
// idempotent: รันซ้ำได้ไม่ duplicate
func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	if err := container.Cleanup(); err != nil {
		logger.Error("Error during cleanup", "error", err)
		os.Exit(1)
	}

	logger.Info("Seed complete")
}
