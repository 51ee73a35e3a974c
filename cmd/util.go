package cmd

import (
	"fmt"
	"log"
	"net"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/vishvananda/netlink"
)

func getVal(i interface{}, err error) interface{} {
	if err != nil {
		panic(err)
	}

	return i
}

// defaultWorkerCount oversubscribes two workers per logical core.
func defaultWorkerCount() int {
	cores, err := cpu.Counts(true)

	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}

	return 2 * cores
}

// checkInterface makes sure the interface we are about to bind to exists and
// is up, and logs the addresses it carries.
func checkInterface(name string) error {
	link, err := netlink.LinkByName(name)

	if err != nil {
		return fmt.Errorf("interface %s: %w", name, err)
	}

	if link.Attrs().Flags&net.FlagUp == 0 {
		return fmt.Errorf("interface %s is down", name)
	}

	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)

	if err != nil {
		return fmt.Errorf("interface %s: %w", name, err)
	}

	for _, a := range addrs {
		log.Printf("INFO: Interface %s has address %s.", name, a.IPNet)
	}

	return nil
}
