package assets

import (
	"encoding/binary"
	"log"
	"math"

	"grimoire/pkg/client/gui"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sounds plays the generated feedback beeps. It implements ui.SoundPlayer.
type Sounds struct {
	ctx   *audio.Context
	clips map[string][]byte
}

func NewSounds() *Sounds {
	clips := map[string][]byte{
		gui.SoundSpell: beep(660, 0.08),
		gui.SoundGem:   beep(990, 0.06),
		gui.SoundItem:  beep(440, 0.07),
		gui.SoundPage:  beep(220, 0.05),
	}
	return &Sounds{ctx: audio.NewContext(sampleRate), clips: clips}
}

func (s *Sounds) Play(key string) {
	clip, ok := s.clips[key]
	if !ok {
		log.Printf("Unknown sound %s", key)
		return
	}
	s.ctx.NewPlayerFromBytes(clip).Play()
}

// beep renders a fading sine tone as 16 bit little endian stereo PCM.
func beep(freq, seconds float64) []byte {
	n := int(sampleRate * seconds)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * fade * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
