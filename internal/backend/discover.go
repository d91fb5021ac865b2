package backend

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/NPC-Worldwide/incognide/internal/config"
)

// Discover resolves the backend base URL once at process start.
//
// Resolution order: the INCOGNIDE_BACKEND_URL environment variable, an
// explicit URL from the config file, then a best-effort TCP probe of the
// configured loopback ports in preference order. When nothing answers, the
// last candidate port is returned anyway; failure is deferred to first use.
func Discover(cfg *config.Config) string {
	if explicit := os.Getenv(config.BackendURLEnv); explicit != "" {
		return explicit
	}
	if cfg.Backend.URL != "" {
		return cfg.Backend.URL
	}

	ports := cfg.Backend.ProbePorts
	if len(ports) == 0 {
		ports = config.Default().Backend.ProbePorts
	}
	return probePorts(ports, cfg.ProbeTimeout())
}

func probePorts(ports []int, timeout time.Duration) string {
	for _, port := range ports {
		addr := net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port))
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err != nil {
			continue
		}
		conn.Close()
		return "http://" + addr
	}

	fallback := fmt.Sprintf("http://127.0.0.1:%d", ports[len(ports)-1])
	log.Printf("backend discovery: no port answered, falling back to %s", fallback)
	return fallback
}
