package roster

import (
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
)

// sampleNames is the demo roster used when trying the tool without real data
var sampleNames = []string{
	"Alice", "Bob", "Charlie", "Deepa", "Ethan", "Farah", "Gopal", "Hina", "Irfan",
}

// Sample generates the demo roster: nine workers, each with a random full
// shift ranking for every day of the week
func Sample(rng *rand.Rand) []*scheduler.Worker {
	workers := make([]*scheduler.Worker, 0, len(sampleNames))
	for _, name := range sampleNames {
		w := scheduler.NewWorker(name)
		for day := 0; day < scheduler.DaysPerWeek; day++ {
			ranking := make([]scheduler.Shift, len(scheduler.ShiftOrder))
			copy(ranking, scheduler.ShiftOrder)
			rng.Shuffle(len(ranking), func(i, j int) {
				ranking[i], ranking[j] = ranking[j], ranking[i]
			})
			w.Preferences[day] = ranking
		}
		workers = append(workers, w)
	}
	return workers
}

// MarshalWorkers renders workers back into roster file YAML, so a generated
// sample can be saved and edited by hand
func MarshalWorkers(workers []*scheduler.Worker) ([]byte, error) {
	file := File{Workers: make([]WorkerEntry, 0, len(workers))}

	dayNames := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for _, w := range workers {
		entry := WorkerEntry{Name: w.Name, Preferences: make(map[string]string)}
		for day := 0; day < scheduler.DaysPerWeek; day++ {
			prefs := w.Preferences[day]
			if len(prefs) == 0 {
				continue
			}
			tokens := make([]string, len(prefs))
			for i, shift := range prefs {
				tokens[i] = string(shift)
			}
			entry.Preferences[dayNames[day]] = strings.Join(tokens, " > ")
		}
		file.Workers = append(file.Workers, entry)
	}

	return yaml.Marshal(&file)
}
