package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// ConversionParameters is the YAML configuration surface for one
// translation run: unit system, emission toggles, run-control settings
// and the optional boundary/contact/load/sensor card definitions.
type ConversionParameters struct {
	Title      string `yaml:"Title"`
	RunName    string `yaml:"RunName"`
	UnitSystem string `yaml:"UnitSystem"` // SI or Imperial
	MeshFile   string `yaml:"MeshFile"`   // relative path on the include line

	EmitSets         bool `yaml:"EmitSets"`
	EmitMaterials    bool `yaml:"EmitMaterials"`
	EmitControlCards bool `yaml:"EmitControlCards"`
	DefaultMaterial  bool `yaml:"DefaultMaterial"`
	IncludeMesh      bool `yaml:"IncludeMesh"`
	AutoProperties   bool `yaml:"AutoProperties"`
	AutoParts        bool `yaml:"AutoParts"`

	// Global elastic fallbacks for materials that never declare them.
	Young   float64 `yaml:"Young"`
	Poisson float64 `yaml:"Poisson"`
	Density float64 `yaml:"Density"`

	// Engine controls. A nil pointer omits the card.
	TEnd       *float64        `yaml:"TEnd"`
	AnimDT     *float64        `yaml:"AnimDT"`
	TfileDT    *float64        `yaml:"TfileDT"`
	DTRatio    *float64        `yaml:"DTRatio"`
	PrintN     *int            `yaml:"PrintN"`
	PrintLine  *int            `yaml:"PrintLine"`
	RfileN     *int            `yaml:"RfileN"`
	RfileCycle *int            `yaml:"RfileCycle"`
	H3DDT      *float64        `yaml:"H3DDT"`
	Stop       *StopSettings   `yaml:"Stop"`
	Adyrel     *AdyrelSettings `yaml:"Adyrel"`

	Materials          []Material          `yaml:"Materials"`
	Properties         []Property          `yaml:"Properties"`
	Parts              []Part              `yaml:"Parts"`
	BoundaryConditions []BoundaryCondition `yaml:"BoundaryConditions"`
	Interfaces         []Interface         `yaml:"Interfaces"`
	InitVelocity       *InitialVelocity    `yaml:"InitVelocity"`
	Gravity            *Gravity            `yaml:"Gravity"`
	Sensors            []Sensor            `yaml:"Sensors"`
	RigidBodies        []RigidBody         `yaml:"RigidBodies"`
	RBE2               []RBE2              `yaml:"RBE2"`
	RBE3               []RBE3              `yaml:"RBE3"`
}

// StopSettings populates the /STOP card.
type StopSettings struct {
	Emax  float64 `yaml:"Emax"`
	Mmax  float64 `yaml:"Mmax"`
	Nmax  float64 `yaml:"Nmax"`
	Nth   int     `yaml:"Nth"`
	Nanim int     `yaml:"Nanim"`
	Nerr  int     `yaml:"Nerr"`
}

// AdyrelSettings populates the /ADYREL dynamic relaxation card.
type AdyrelSettings struct {
	Start float64 `yaml:"Start"`
	Stop  float64 `yaml:"Stop"`
}

// Material is an extra material declared in configuration. Its id is a
// preference: when the source deck already uses it, the material is
// renumbered above the current maximum and part references follow.
type Material struct {
	ID         int                `yaml:"ID"`
	Law        string             `yaml:"Law"`
	Name       string             `yaml:"Name"`
	Params     map[string]float64 `yaml:"Params"`
	Fail       string             `yaml:"Fail"` // failure model type; coefficients completed when absent
	FailParams map[string]float64 `yaml:"FailParams"`
	Curve      [][2]float64       `yaml:"Curve"` // LAW36 hardening curve
}

type Property struct {
	ID        int     `yaml:"ID"`
	Name      string  `yaml:"Name"`
	Type      string  `yaml:"Type"` // SHELL or SOLID
	Thickness float64 `yaml:"Thickness"`
}

// Part links a property, a material and optionally a named element
// selection emitted as a /SUBSET.
type Part struct {
	ID      int    `yaml:"ID"`
	Name    string `yaml:"Name"`
	PID     int    `yaml:"PID"`
	MID     int    `yaml:"MID"`
	ElemSet string `yaml:"ElemSet"`
}

// BoundaryCondition is either a fixation (/BCS) or a prescribed motion
// (/BOUNDARY/PRESCRIBED_MOTION). Nodes may be listed explicitly or taken
// from a named node selection.
type BoundaryCondition struct {
	Name      string  `yaml:"Name"`
	Type      string  `yaml:"Type"` // BCS (default) or PRESCRIBED_MOTION
	Tra       string  `yaml:"Tra"`
	Rot       string  `yaml:"Rot"`
	Dir       int     `yaml:"Dir"`
	Value     float64 `yaml:"Value"`
	Nodes     []int   `yaml:"Nodes"`
	Selection string  `yaml:"Selection"`
}

// Interface is a contact definition (/INTER/TYPE7 or /INTER/TYPE2).
type Interface struct {
	Name            string  `yaml:"Name"`
	Type            string  `yaml:"Type"`
	Slave           []int   `yaml:"Slave"`
	Master          []int   `yaml:"Master"`
	SlaveSelection  string  `yaml:"SlaveSelection"`
	MasterSelection string  `yaml:"MasterSelection"`
	Fric            float64 `yaml:"Fric"`
}

type InitialVelocity struct {
	Nodes     []int   `yaml:"Nodes"`
	Selection string  `yaml:"Selection"`
	VX        float64 `yaml:"VX"`
	VY        float64 `yaml:"VY"`
	VZ        float64 `yaml:"VZ"`
}

type Gravity struct {
	G  float64 `yaml:"G"`
	NX float64 `yaml:"NX"`
	NY float64 `yaml:"NY"`
	NZ float64 `yaml:"NZ"`
}

// Sensor emits a /SENSOR/TIME card.
type Sensor struct {
	Name   string  `yaml:"Name"`
	Tdelay float64 `yaml:"Tdelay"`
}

type RigidBody struct {
	Name       string  `yaml:"Name"`
	MasterNode int     `yaml:"MasterNode"`
	Nodes      []int   `yaml:"Nodes"`
	Selection  string  `yaml:"Selection"`
	Mass       float64 `yaml:"Mass"`
}

type RBE2 struct {
	Name       string `yaml:"Name"`
	MasterNode int    `yaml:"MasterNode"`
	Nodes      []int  `yaml:"Nodes"`
	Selection  string `yaml:"Selection"`
}

type RBE3 struct {
	Name        string       `yaml:"Name"`
	Dependent   int          `yaml:"Dependent"`
	Independent [][2]float64 `yaml:"Independent"` // node id, weight pairs
}

// NewConversionParameters returns the default configuration: SI units,
// every emission toggle on, structural-steel global fallbacks and the
// stock engine controls.
func NewConversionParameters() *ConversionParameters {
	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }
	return &ConversionParameters{
		RunName:          "model",
		UnitSystem:       "SI",
		MeshFile:         "mesh.inc",
		EmitSets:         true,
		EmitMaterials:    true,
		EmitControlCards: true,
		DefaultMaterial:  true,
		IncludeMesh:      true,
		AutoProperties:   true,
		AutoParts:        true,
		Young:            210000.0,
		Poisson:          0.3,
		Density:          7800.0,
		TEnd:             f(1.0),
		AnimDT:           f(0.05),
		TfileDT:          f(0.001),
		DTRatio:          f(0.9),
		PrintN:           n(-500),
		PrintLine:        n(100),
		Stop:             &StopSettings{Nth: 1, Nanim: 1},
	}
}

// Parse overlays YAML data onto the receiver; absent fields keep their
// defaults.
func (cp *ConversionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *ConversionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%s]\t\t= RunName\n", cp.RunName)
	fmt.Printf("[%s]\t\t\t= UnitSystem\n", cp.UnitSystem)
	if cp.TEnd != nil {
		fmt.Printf("%8.5f\t\t= TEnd\n", *cp.TEnd)
	}
	fmt.Printf("%8.1f\t= Young\n", cp.Young)
	fmt.Printf("%8.3f\t\t= Poisson\n", cp.Poisson)
	fmt.Printf("%8.1f\t\t= Density\n", cp.Density)
	names := make([]string, 0, len(cp.BoundaryConditions))
	for _, bc := range cp.BoundaryConditions {
		names = append(names, bc.Name)
	}
	sort.Strings(names)
	for _, nm := range names {
		fmt.Printf("BC[%s]\n", nm)
	}
}
