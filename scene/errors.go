package scene

import "github.com/pkg/errors"

func errUnknownScene(name string) error {
	return errors.Errorf("scene: no scene registered under name %q", name)
}
