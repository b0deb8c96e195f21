// Package sdlaudio holds the persisted audio preferences for the SDL GUI.
// The SID's own register state is not part of this: Preferences only
// covers the host-side mixing knobs (mute, output gain) that sit between
// sid.SID.Synthesize and the SDL audio device.
package sdlaudio

import (
	"github.com/kondrak/rust64-sub000/prefs"
	"github.com/kondrak/rust64-sub000/resources"
)

// Preferences holds the host-side audio settings that persist between runs.
type Preferences struct {
	dsk    *prefs.Disk
	Mute   prefs.Bool
	Volume prefs.Int // 0-100, applied as a linear scale to the synthesized PCM stream
}

func (p *Preferences) String() string {
	return "sdlaudio.mute=" + p.Mute.String() + " sdlaudio.volume=" + p.Volume.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("sdlaudio.mute", &p.Mute); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlaudio.volume", &p.Volume); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all audio settings to default values.
func (p *Preferences) SetDefaults() {
	p.Mute.Set(false)
	p.Volume.Set(100)
}

// Load reloads audio preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save writes current audio preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
