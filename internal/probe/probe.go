// Package probe runs the call sequence a host performs when it scans a
// module and checks every answer against the factory contract.
package probe

import (
	"fmt"
	"strings"

	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

// Host is a factory as seen from the host side of the boundary.
//
// QueryInterface and CreateInstance also report whether the out pointer was
// handled correctly: written with the factory's own address on success and
// left alone otherwise.
type Host interface {
	QueryInterface(iid vst3.TUID) (vst3.Result, bool)
	AddRef() uint32
	Release() uint32
	GetFactoryInfo(out *vst3.PFactoryInfo) vst3.Result
	CountClasses() int32
	GetClassInfo(index int32, out *vst3.PClassInfo) vst3.Result
	GetClassInfo2(index int32, out *vst3.PClassInfo2) vst3.Result
	GetClassInfoUnicode(index int32, out *vst3.PClassInfoW) vst3.Result
	CreateInstance(cid, iid vst3.TUID) (vst3.Result, bool)
}

// Direct adapts a factory so it can be probed without crossing the C
// boundary.
func Direct(f *factory.Factory) Host {
	return direct{f}
}

type direct struct {
	f *factory.Factory
}

func (d direct) QueryInterface(iid vst3.TUID) (vst3.Result, bool) {
	if d.f.QueryInterface(iid) {
		return vst3.ResultOk, true
	}
	return vst3.ResultNoInterface, true
}

func (d direct) AddRef() uint32 { return d.f.AddRef() }

func (d direct) Release() uint32 { return d.f.Release() }

func (d direct) CountClasses() int32 { return d.f.CountClasses() }

func (d direct) GetFactoryInfo(out *vst3.PFactoryInfo) vst3.Result {
	return d.f.GetFactoryInfo(out)
}

func (d direct) GetClassInfo(index int32, out *vst3.PClassInfo) vst3.Result {
	return d.f.GetClassInfo(index, out)
}

func (d direct) GetClassInfo2(index int32, out *vst3.PClassInfo2) vst3.Result {
	return d.f.GetClassInfo2(index, out)
}

func (d direct) GetClassInfoUnicode(index int32, out *vst3.PClassInfoW) vst3.Result {
	return d.f.GetClassInfoUnicode(index, out)
}

func (d direct) CreateInstance(cid, iid vst3.TUID) (vst3.Result, bool) {
	return d.f.CreateInstance(cid, iid), true
}

// Check is the outcome of one contract check.
type Check struct {
	Name     string
	Failures []string
}

// Passed reports whether the check found no violations.
func (c Check) Passed() bool {
	return len(c.Failures) == 0
}

// Detail joins the failures into one line.
func (c Check) Detail() string {
	return strings.Join(c.Failures, "; ")
}

func (c *Check) failf(format string, args ...any) {
	c.Failures = append(c.Failures, fmt.Sprintf(format, args...))
}

// Report is the result of a probe run.
type Report struct {
	Factory factory.Info
	// Classes are decoded from the wide generation.
	Classes []factory.ClassDescriptor
	Checks  []Check
	Timings []debug.Measurement
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// seed marks records handed to calls that must not write them.
const seed vst3.Cardinality = 0x5EED

var supported = []vst3.TUID{
	vst3.IIDFUnknown,
	vst3.IIDIPluginFactory,
	vst3.IIDIPluginFactory2,
	vst3.IIDIPluginFactory3,
}

var unsupported = []vst3.TUID{
	vst3.IIDIPluginBase,
	vst3.IIDIComponent,
	vst3.IIDIAudioProcessor,
	vst3.IIDIEditController,
	vst3.NilUID,
}

// Run probes h. Call timings are recorded in p, which may be nil.
func Run(h Host, p *debug.Profiler) Report {
	if p == nil {
		p = debug.NewProfiler()
	}
	r := &runner{h: h, p: p}

	var report Report
	report.Checks = append(report.Checks,
		r.queryInterface(),
		r.refCount(),
	)

	info, check := r.factoryInfo()
	report.Factory = info
	report.Checks = append(report.Checks, check)

	classes, check := r.enumerate()
	report.Classes = classes
	report.Checks = append(report.Checks,
		check,
		r.invalidIndex(),
		uniqueCIDs(classes),
		r.createInstance(classes),
	)

	report.Timings = p.All()
	return report
}

func ifaceName(iid vst3.TUID) string {
	if name := vst3.InterfaceName(iid); name != "" {
		return name
	}
	return iid.Hex()
}

type runner struct {
	h Host
	p *debug.Profiler
}

func (r *runner) queryInterface() Check {
	c := Check{Name: "queryInterface"}
	for _, iid := range supported {
		stop := r.p.Start("queryInterface")
		res, outOK := r.h.QueryInterface(iid)
		stop()
		if res != vst3.ResultOk {
			c.failf("%s: got %s, want kResultOk", ifaceName(iid), res)
		}
		if !outOK {
			c.failf("%s: object pointer is not the factory", ifaceName(iid))
		}
	}
	for _, iid := range unsupported {
		stop := r.p.Start("queryInterface")
		res, outOK := r.h.QueryInterface(iid)
		stop()
		if res != vst3.ResultNoInterface {
			c.failf("%s: got %s, want kNoInterface", ifaceName(iid), res)
		}
		if !outOK {
			c.failf("%s: object pointer was written", ifaceName(iid))
		}
	}
	return c
}

func (r *runner) refCount() Check {
	c := Check{Name: "refCount"}
	for i := 0; i < 3; i++ {
		if n := r.h.AddRef(); n != factory.RefCount {
			c.failf("addRef returned %d", n)
		}
		if n := r.h.Release(); n != factory.RefCount {
			c.failf("release returned %d", n)
		}
	}
	return c
}

func (r *runner) factoryInfo() (factory.Info, Check) {
	c := Check{Name: "getFactoryInfo"}

	var rec vst3.PFactoryInfo
	stop := r.p.Start("getFactoryInfo")
	res := r.h.GetFactoryInfo(&rec)
	stop()
	if res != vst3.ResultOk {
		c.failf("got %s", res)
		return factory.Info{}, c
	}

	info := factory.DecodeFactoryInfo(&rec)
	if info.Flags&vst3.FactoryUnicode == 0 {
		c.failf("kUnicode flag not set (flags %#x)", info.Flags)
	}
	return info, c
}

// enumerate runs all three query generations for every index and checks
// that they describe the same classes.
func (r *runner) enumerate() ([]factory.ClassDescriptor, Check) {
	c := Check{Name: "classInfo"}

	stop := r.p.Start("countClasses")
	count := r.h.CountClasses()
	stop()
	if count < 0 {
		c.failf("countClasses returned %d", count)
		return nil, c
	}

	classes := make([]factory.ClassDescriptor, 0, count)
	for i := int32(0); i < count; i++ {
		var (
			minimal  vst3.PClassInfo
			extended vst3.PClassInfo2
			wide     vst3.PClassInfoW
		)
		results := [...]vst3.Result{
			r.timed(factory.Minimal, func() vst3.Result { return r.h.GetClassInfo(i, &minimal) }),
			r.timed(factory.Extended, func() vst3.Result { return r.h.GetClassInfo2(i, &extended) }),
			r.timed(factory.ExtendedWide, func() vst3.Result { return r.h.GetClassInfoUnicode(i, &wide) }),
		}
		failed := false
		for g, res := range results {
			if res != vst3.ResultOk {
				c.failf("%s(%d): got %s", factory.Generations[g], i, res)
				failed = true
			}
		}
		if failed {
			continue
		}

		m := factory.DecodeClassInfo(&minimal)
		e := factory.DecodeClassInfo2(&extended)
		w := factory.DecodeClassInfoW(&wide)
		if m.CID != e.CID || m.CID != w.CID {
			c.failf("class %d: CID differs between generations", i)
		}
		if m.Cardinality != e.Cardinality || m.Cardinality != w.Cardinality {
			c.failf("class %d: cardinality differs between generations", i)
		}
		if m.Category != e.Category || m.Category != w.Category {
			c.failf("class %d: category differs between generations", i)
		}
		if m.Name != e.Name {
			c.failf("class %d: name %q in getClassInfo, %q in getClassInfo2", i, m.Name, e.Name)
		}
		if (m.Name == "") != (w.Name == "") {
			c.failf("class %d: name %q in getClassInfo, %q in getClassInfoUnicode", i, m.Name, w.Name)
		}
		if e.ClassFlags != w.ClassFlags || e.SubCategories != w.SubCategories {
			c.failf("class %d: extended fields differ between narrow and wide", i)
		}
		classes = append(classes, w)
	}
	return classes, c
}

func (r *runner) timed(g factory.Generation, call func() vst3.Result) vst3.Result {
	stop := r.p.Start(g.String())
	defer stop()
	return call()
}

func (r *runner) invalidIndex() Check {
	c := Check{Name: "invalidIndex"}
	count := r.h.CountClasses()

	for _, index := range []int32{-1, count, count + 1} {
		minimal := vst3.PClassInfo{Cardinality: seed}
		if res := r.h.GetClassInfo(index, &minimal); res != vst3.ResultInvalidArgument {
			c.failf("getClassInfo(%d): got %s", index, res)
		}
		extended := vst3.PClassInfo2{Cardinality: seed}
		if res := r.h.GetClassInfo2(index, &extended); res != vst3.ResultInvalidArgument {
			c.failf("getClassInfo2(%d): got %s", index, res)
		}
		wide := vst3.PClassInfoW{Cardinality: seed}
		if res := r.h.GetClassInfoUnicode(index, &wide); res != vst3.ResultInvalidArgument {
			c.failf("getClassInfoUnicode(%d): got %s", index, res)
		}
		if minimal.Cardinality != seed || extended.Cardinality != seed || wide.Cardinality != seed {
			c.failf("index %d: record written on failure", index)
		}
	}
	return c
}

func uniqueCIDs(classes []factory.ClassDescriptor) Check {
	c := Check{Name: "uniqueCIDs"}
	seen := make(map[vst3.TUID]string, len(classes))
	for _, class := range classes {
		if class.CID.IsNil() {
			c.failf("%s: CID is all zeros", class.Name)
		}
		if other, dup := seen[class.CID]; dup {
			c.failf("%s and %s share CID %s", other, class.Name, class.CID.Hex())
		}
		seen[class.CID] = class.Name
	}
	return c
}

func (r *runner) createInstance(classes []factory.ClassDescriptor) Check {
	c := Check{Name: "createInstance"}
	for _, class := range classes {
		stop := r.p.Start("createInstance")
		res, outOK := r.h.CreateInstance(class.CID, vst3.IIDIComponent)
		stop()
		if res == vst3.ResultOk {
			c.failf("%s: created an instance but no class has an implementation", class.Name)
		}
		if !outOK {
			c.failf("%s: object pointer was written", class.Name)
		}
	}

	unknown := vst3.InlineUID(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF)
	if res, _ := r.h.CreateInstance(unknown, vst3.IIDIComponent); res != vst3.ResultNoInterface {
		c.failf("unknown class: got %s, want kNoInterface", res)
	}
	return c
}
