//go:build windows

package envstore

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/arthur-debert/pathgroup/pkg/errors"
)

// envKeyPath is the HKLM key holding machine-wide environment variables.
const envKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

type machineStore struct{}

func newMachine() (Store, error) {
	return &machineStore{}, nil
}

func (machineStore) Get(name string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, envKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvRead, "failed to open machine environment key")
	}
	defer func() { _ = key.Close() }()

	value, _, err := key.GetStringValue(name)
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvRead, "failed to read %s", name)
	}
	return value, nil
}

func (machineStore) Set(name, value string) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, envKeyPath, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to open machine environment key for writing")
	}
	defer func() { _ = key.Close() }()

	// PATH is conventionally REG_EXPAND_SZ so %SystemRoot% style references
	// keep expanding for consumers.
	if err := key.SetExpandStringValue(name, value); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to set %s", name)
	}

	broadcastSettingChange()
	return nil
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

const (
	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001a
	smtoAbortIfHung = 0x0002
)

// broadcastSettingChange tells running applications the environment block
// changed. Best effort; a hung window must not block the caller.
func broadcastSettingChange() {
	param, err := syscall.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	_, _, _ = procSendMessageTimeoutW.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(param)),
		uintptr(smtoAbortIfHung),
		uintptr(5000),
		0,
	)
}
