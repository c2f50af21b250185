// Command poolctl is a diagnostic smoke binary exercising every package
// in this module: pool hierarchy and cleanup ordering, the pool-aware
// container surface, the priority queue, and the filesystem resource
// resolver. It prints a JSON summary using internal/cli's
// VersionInfo/PrintVersion helpers.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/libstappler/libstappler-core-sub003/internal/cli"
	"github.com/libstappler/libstappler-core-sub003/internal/container"
	"github.com/libstappler/libstappler-core-sub003/internal/pool"
	"github.com/libstappler/libstappler-core-sub003/internal/resource"
	"github.com/libstappler/libstappler-core-sub003/internal/workqueue"
)

type summary struct {
	Version   *cli.VersionInfo `json:"version"`
	Pool      poolSummary      `json:"pool"`
	Container containerSummary `json:"container"`
	Queue     queueSummary     `json:"queue"`
	Resource  resourceSummary  `json:"resource"`
}

type poolSummary struct {
	IsStapplerPool bool     `json:"is_stappler_pool"`
	AllocatedBytes uint64   `json:"allocated_bytes"`
	ReturnedBytes  uint64   `json:"returned_bytes"`
	CleanupOrder   []string `json:"cleanup_order"`
}

type containerSummary struct {
	MapKeysAscending []int `json:"map_keys_ascending"`
}

type queueSummary struct {
	PopOrder []string `json:"pop_order"`
}

type resourceSummary struct {
	CommonConfigPaths []string `json:"common_config_paths"`
}

func main() {
	// Fatal pool-layer conditions (allocator exhaustion, context-stack
	// misuse) surface as panics; report them as tool errors here rather
	// than a bare stack trace.
	defer func() {
		if r := recover(); r != nil {
			cli.ExitWithError("fatal: %v", r)
		}
	}()

	jsonOutput := flag.Bool("json", true, "emit JSON summary")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		cli.PrintVersion("poolctl", *jsonOutput)
		return
	}

	s := summary{Version: cli.GetVersionInfo()}

	root := pool.NewRoot()
	child := pool.New(root)
	var order []string
	child.CleanupRegister(func(any) { order = append(order, "child") }, nil)
	root.CleanupRegister(func(any) { order = append(order, "root") }, nil)

	b := root.Alloc(4096)
	root.Free(b)

	s.Pool.IsStapplerPool = pool.IsStapplerPool(root)
	s.Pool.AllocatedBytes = root.AllocatedBytes()
	s.Pool.ReturnedBytes = root.ReturnedBytes()
	root.Clear()
	s.Pool.CleanupOrder = order

	m := container.NewOrderedMap[int, string](root, func(a, b int) bool { return a < b })
	for _, k := range []int{5, 3, 8, 1, 4} {
		m.Emplace(k, fmt.Sprintf("v%d", k))
	}
	s.Container.MapKeysAscending = m.Keys()

	q := workqueue.New[string](root, nil)
	q.Push("a", 10, false)
	q.Push("b", 5, false)
	q.Push("c", 10, true)
	for i := 0; i < 3; i++ {
		q.PopPrefix(func(_ int32, v string) { s.Queue.PopOrder = append(s.Queue.PopOrder, v) })
	}

	if tbl, err := resource.Initialize(root); err == nil {
		tbl.EnumeratePaths(resource.CommonConfig, "", 0, resource.AccessNone, func(path string, _ resource.FileFlags) bool {
			s.Resource.CommonConfigPaths = append(s.Resource.CommonConfigPaths, path)
			return true
		})
	}

	if *jsonOutput {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			cli.ExitWithError("marshal summary: %v", err)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Printf("%+v\n", s)
	os.Exit(0)
}
