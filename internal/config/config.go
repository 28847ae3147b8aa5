// Package config loads the controller configuration file and answers the
// per-robot hardware lookups made by the pipeline every cycle.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Revision identifies a robot hardware generation.
type Revision int

const (
	RevUnknown Revision = iota
	Rev2008
	Rev2010
)

func (r Revision) String() string {
	switch r {
	case Rev2008:
		return "2008"
	case Rev2010:
		return "2010"
	default:
		return "unknown"
	}
}

// ParseRevision maps a configuration string to a Revision.
func ParseRevision(s string) (Revision, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "rev") {
	case "2008":
		return Rev2008, nil
	case "2010":
		return Rev2010, nil
	case "":
		return RevUnknown, nil
	default:
		return RevUnknown, fmt.Errorf("unknown robot revision %q", s)
	}
}

// Robot is the hardware configuration of one physical robot.
type Robot struct {
	Shell   int       `mapstructure:"shell"`
	RevName string    `mapstructure:"rev"`
	Rev     Revision  `mapstructure:"-"`
	Motors  []float64 `mapstructure:"motor_scale"`
	Kick    float64   `mapstructure:"kick_strength"`
	Roller  int       `mapstructure:"roller_speed"`
}

// MotorScale returns the calibration factor for motor m, 1 when unset.
func (r Robot) MotorScale(m int) float64 {
	if m < 0 || m >= len(r.Motors) || r.Motors[m] == 0 {
		return 1
	}
	return r.Motors[m]
}

// Network holds the socket endpoints.
type Network struct {
	Interface      string `mapstructure:"interface"`
	VisionAddress  string `mapstructure:"vision_address"`
	VisionPort     int    `mapstructure:"vision_port"`
	SimVisionPort  int    `mapstructure:"sim_vision_port"`
	RefereeAddress string `mapstructure:"referee_address"`
	RefereePort    int    `mapstructure:"referee_port"`
	RadioTxPort    int    `mapstructure:"radio_tx_port"`
	RadioRxPort    int    `mapstructure:"radio_rx_port"`
	RcvBuf         int    `mapstructure:"rcvbuf"`
	// MaxCameras bounds the camera ids accepted from vision.
	MaxCameras int `mapstructure:"max_cameras"`
}

// Field holds the playing-field dimensions in metres.
type Field struct {
	Length float64 `mapstructure:"length"`
	Width  float64 `mapstructure:"width"`
}

// Loop holds control loop timing.
type Loop struct {
	FrameRate       float64 `mapstructure:"frame_rate"`
	SyncToVision    bool    `mapstructure:"sync_to_vision"`
	ExternalReferee bool    `mapstructure:"external_referee"`
}

// FramePeriod returns the target cycle period.
func (l Loop) FramePeriod() time.Duration {
	if l.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Duration(float64(time.Second) / l.FrameRate)
}

// WorldModel holds parameters for the sensing collaborator.
type WorldModel struct {
	VisionTimeout time.Duration `mapstructure:"vision_timeout"`
}

// Motion holds parameters for the motion collaborator.
type Motion struct {
	MaxSpeed        float64 `mapstructure:"max_speed"`
	MaxAcceleration float64 `mapstructure:"max_acceleration"`
}

// File is the complete controller configuration.
type File struct {
	Network    Network    `mapstructure:"network"`
	Field      Field      `mapstructure:"field"`
	Loop       Loop       `mapstructure:"loop"`
	WorldModel WorldModel `mapstructure:"world_model"`
	Motion     Motion     `mapstructure:"motion"`
	Robots     []Robot    `mapstructure:"robots"`

	byShell map[int]*Robot
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.interface", "")
	v.SetDefault("network.vision_address", "224.5.23.2")
	v.SetDefault("network.vision_port", 10002)
	v.SetDefault("network.sim_vision_port", 10012)
	v.SetDefault("network.referee_address", "224.5.23.1")
	v.SetDefault("network.referee_port", 10001)
	v.SetDefault("network.radio_tx_port", 10000)
	v.SetDefault("network.radio_rx_port", 10010)
	v.SetDefault("network.rcvbuf", 1<<20)
	v.SetDefault("network.max_cameras", 16)

	v.SetDefault("field.length", 6.05)
	v.SetDefault("field.width", 4.05)

	v.SetDefault("loop.frame_rate", 60.0)
	v.SetDefault("loop.sync_to_vision", false)
	v.SetDefault("loop.external_referee", true)

	v.SetDefault("world_model.vision_timeout", "250ms")

	v.SetDefault("motion.max_speed", 2.0)
	v.SetDefault("motion.max_acceleration", 3.0)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SOCCER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*File, error) {
	f := &File{}
	if err := v.Unmarshal(f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := f.index(); err != nil {
		return nil, err
	}
	return f, nil
}

// Default returns the built-in configuration with no robots.
func Default() *File {
	f, err := decode(newViper())
	if err != nil {
		// Defaults are static; a failure here is a programming error.
		panic(err)
	}
	return f
}

// Load reads the configuration file at path. The format is chosen from the
// extension (json, yaml, toml). Keys omitted from the file keep their
// defaults. On error the defaults are returned alongside the error so the
// caller can log it and carry on.
func Load(path string) (*File, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := decode(v)
	if err != nil {
		return Default(), err
	}
	if err := f.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid configuration: %w", err)
	}
	return f, nil
}

func (f *File) index() error {
	f.byShell = make(map[int]*Robot, len(f.Robots))
	for i := range f.Robots {
		r := &f.Robots[i]
		rev, err := ParseRevision(r.RevName)
		if err != nil {
			return fmt.Errorf("robot %d: %w", r.Shell, err)
		}
		r.Rev = rev
		f.byShell[r.Shell] = r
	}
	return nil
}

// Validate checks that the configuration values are usable.
func (f *File) Validate() error {
	if f.Loop.FrameRate <= 0 || f.Loop.FrameRate > 1000 {
		return fmt.Errorf("loop.frame_rate must be in (0, 1000], got %v", f.Loop.FrameRate)
	}
	if f.Field.Length <= 0 || f.Field.Width <= 0 {
		return fmt.Errorf("field dimensions must be positive, got %vx%v", f.Field.Length, f.Field.Width)
	}
	ports := map[string]int{
		"vision_port":     f.Network.VisionPort,
		"sim_vision_port": f.Network.SimVisionPort,
		"referee_port":    f.Network.RefereePort,
		"radio_tx_port":   f.Network.RadioTxPort,
		"radio_rx_port":   f.Network.RadioRxPort,
	}
	for name, p := range ports {
		if p <= 0 || p > 65534 {
			return fmt.Errorf("network.%s out of range: %d", name, p)
		}
	}
	if f.Network.MaxCameras <= 0 || f.Network.MaxCameras > 64 {
		return fmt.Errorf("network.max_cameras must be in (0, 64], got %d", f.Network.MaxCameras)
	}
	seen := make(map[int]bool, len(f.Robots))
	for _, r := range f.Robots {
		if r.Shell < 0 {
			return fmt.Errorf("robot shell must be non-negative, got %d", r.Shell)
		}
		if seen[r.Shell] {
			return fmt.Errorf("duplicate robot shell %d", r.Shell)
		}
		seen[r.Shell] = true
	}
	return nil
}

// Robot returns the configuration for shell, if present.
func (f *File) Robot(shell int) (*Robot, bool) {
	if f == nil || f.byShell == nil {
		return nil, false
	}
	r, ok := f.byShell[shell]
	return r, ok
}
