package prose

import "github.com/worldforge/sim/backend/internal/model"

// DefaultTemplates returns a small sample template pool covering every
// LogCategory, sufficient to exercise the composer end-to-end. Production
// embedding supplies a richer set via the same map shape.
func DefaultTemplates() map[model.LogCategory][]Template {
	return map[model.LogCategory][]Template{
		model.LogCategorySystem: {
			{Summary: "the world holds its breath", Details: "no subsystem had anything to report this tick"},
			{Summary: "a quiet {timeOfDay} passes", Details: "nothing of note stirred near {settlement}"},
		},
		model.LogCategoryWeather: {
			{Summary: "{weather} settles over the land", Details: "the {weather} began at {timeOfDay} and is expected to hold"},
			{Summary: "the sky turns to {weather}", Details: "travelers near {settlement} take note of the change"},
		},
		model.LogCategoryEvent: {
			{Summary: "{actor} is swept up in sudden violence near {settlement}", Details: "witnesses describe chaos breaking out during the {timeOfDay}"},
			{Summary: "word spreads of {actor}'s deeds near {settlement}", Details: "the account varies with each telling"},
		},
		model.LogCategoryTravel: {
			{Summary: "a party presses on through {terrain} in the {timeOfDay}", Details: "the {weather} slows their pace but does not stop them"},
			{Summary: "the road through {terrain} proves uneventful", Details: "the party makes good time despite the {weather}"},
		},
		model.LogCategoryTreasure: {
			{Summary: "glittering wealth surfaces near {settlement}", Details: "word of the find will not stay secret for long"},
			{Summary: "a hoard is dragged, piece by piece, from the dark", Details: "the extraction near {settlement} continues"},
		},
		model.LogCategoryNaval: {
			{Summary: "a ship clears {settlement}'s harbor", Details: "the {weather} favors the crossing"},
			{Summary: "sails are sighted off {settlement}", Details: "the harbor master notes the ship's condition"},
		},
		model.LogCategoryWar: {
			{Summary: "an army marches on {settlement}", Details: "the {note} reaches {settlement} before the vanguard does"},
			{Summary: "battle is joined near {settlement}", Details: "{note}"},
		},
		model.LogCategoryMemory: {
			{Summary: "{actor} will not soon forget what happened near {settlement}", Details: "the memory settles deep, coloring every choice that follows"},
		},
		model.LogCategoryRumor: {
			{Summary: "a rumor concerning {actor} reaches {settlement}", Details: "like all rumors, it has grown in the telling"},
		},
	}
}
