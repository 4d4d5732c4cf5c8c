package gltexture

import (
	"sync"
)

// Backend name constants.
const (
	// BackendOpenGL is the OpenGL backend provided by the opengl
	// subpackage.
	BackendOpenGL = "opengl"
)

// DeviceFactory creates a new device instance. Factories that talk to a
// live GPU require the backend's context to be current when called.
type DeviceFactory func() (Device, error)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]DeviceFactory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendOpenGL}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get creates a device for the named backend. It fails with
// CodeUnsupported if the backend is not registered.
func Get(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, Errorf(CodeUnsupported, "backend %q not registered", name)
	}
	return factory()
}

// Default creates a device for the best available backend based on
// priority, falling back to any registered backend. It fails with
// CodeUnsupported if no backend can produce a device.
func Default() (Device, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var lastErr error
	for _, name := range backendPriority {
		factory, ok := backends[name]
		if !ok {
			continue
		}
		dev, err := factory()
		if err == nil {
			return dev, nil
		}
		lastErr = err
	}

	// Fallback: first available.
	for _, factory := range backends {
		dev, err := factory()
		if err == nil {
			return dev, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, NewError(CodeUnsupported, "no backend available")
}

// MustDefault returns the default device or panics.
func MustDefault() Device {
	dev, err := Default()
	if err != nil {
		panic("gltexture: " + err.Error())
	}
	return dev
}
