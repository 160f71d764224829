package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()
}

func EnvPort() string {
	port := os.Getenv("SHOPNEARME_PORT")
	if port == "" {
		return "3000"
	}
	return port
}

// EnvDeliveryFee is the flat fee added to every non-empty cart.
func EnvDeliveryFee() int {
	return envInt("DELIVERY_FEE", 40)
}

// EnvProcessingDelay is how long the simulated payment spends in processing.
func EnvProcessingDelay() time.Duration {
	return time.Duration(envInt("PROCESSING_DELAY_MS", 2000)) * time.Millisecond
}

// EnvSuccessDelay is how long the confirmation stays up before the checkout
// resets and the cart is cleared.
func EnvSuccessDelay() time.Duration {
	return time.Duration(envInt("SUCCESS_DELAY_MS", 2000)) * time.Millisecond
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
