package llm

// Prompt templates for the two alarm actions. Both interpolate the
// profile's goals and fears (fmt.Sprintf, goals first).

// DismissPromptTemplate rewards getting up: an affirming phrase built from
// the user's goals.
const DismissPromptTemplate = `Based on the user's goals and fears, generate a single concise, powerful motivational phrase that affirms their desire to achieve their goals. Avoid being patronising or overly formal.
Goals: %s
Fears: %s`

// SnoozePromptTemplate punishes snoozing: a confrontational phrase built
// from the user's fears.
const SnoozePromptTemplate = `Generate a concise, impactful phrase that reflects the user's fears and challenges their goals in a direct, aggressive tone. Avoid excessive explanation or formality.
Goals: %s
Fears: %s`
