package report

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo describes the host a run was timed on.
type SysInfo struct {
	Platform string `yaml:"platform"`
	CPU      string `yaml:"cpu"`
	RAM      string `yaml:"ram"`
}

// CollectSysInfo queries the host. Fields that cannot be read stay empty
// and their errors are joined into the returned error.
func CollectSysInfo() (SysInfo, error) {
	var (
		info SysInfo
		errs []error
	)
	if h, err := host.Info(); err != nil {
		errs = append(errs, fmt.Errorf("host: %w", err))
	} else {
		info.Platform = h.Platform
	}
	if c, err := cpu.Info(); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(c) > 0 {
		info.CPU = c[0].ModelName
	}
	if v, err := mem.VirtualMemory(); err != nil {
		errs = append(errs, fmt.Errorf("mem: %w", err))
	} else {
		info.RAM = fmt.Sprintf("%d GB", v.Total/1024/1024/1024)
	}

	if err := errors.Join(errs...); err != nil {
		return info, fmt.Errorf("report: sysinfo: %w", err)
	}
	return info, nil
}
