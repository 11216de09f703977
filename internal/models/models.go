package models

// SkillLevel classifies a workout's difficulty tier.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Category groups workouts by the skill they train.
type Category string

const (
	CategoryShooting     Category = "shooting"
	CategoryDribbling    Category = "dribbling"
	CategoryDefense      Category = "defense"
	CategoryConditioning Category = "conditioning"
)

// Drill is one exercise within a workout. Static catalog content.
type Drill struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Sets         int    `json:"sets" yaml:"sets"`
	Reps         int    `json:"reps" yaml:"reps"`
	RestSeconds  int    `json:"restSeconds" yaml:"rest_seconds"`
	Instructions string `json:"instructions" yaml:"instructions"`
	VideoURL     string `json:"videoUrl,omitempty" yaml:"video_url,omitempty"`
}

// Workout is a predefined training routine from the static catalog.
type Workout struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Category   Category   `json:"category" yaml:"category"`
	SkillLevel SkillLevel `json:"skillLevel" yaml:"skill_level"`
	// Duration is the estimated total length in minutes.
	Duration  int      `json:"duration" yaml:"duration"`
	Drills    []Drill  `json:"drills" yaml:"drills"`
	Equipment []string `json:"equipment" yaml:"equipment"`
}

// CompletedDrill tracks one drill's completion state within a session.
// DrillName is frozen from the catalog at session start so historical
// records survive catalog edits. ActualSets/ActualReps are reserved fields
// carried for wire compatibility; no current flow populates them.
type CompletedDrill struct {
	DrillID    string `json:"drillId"`
	DrillName  string `json:"drillName"`
	Completed  bool   `json:"completed"`
	ActualSets *int   `json:"actualSets,omitempty"`
	ActualReps *int   `json:"actualReps,omitempty"`
}

// WorkoutSession is the immutable historical record of one finished
// session. Date is the session start in epoch milliseconds; TotalTime is
// the elapsed seconds at save time. Field names are a persistence contract
// shared with other clients of the same data and must not change.
type WorkoutSession struct {
	ID              string           `json:"id"`
	WorkoutID       string           `json:"workoutId"`
	WorkoutName     string           `json:"workoutName"`
	Date            int64            `json:"date"`
	TotalTime       int              `json:"totalTime"`
	CompletedDrills []CompletedDrill `json:"completedDrills"`
	Notes           string           `json:"notes,omitempty"`
	Difficulty      int              `json:"difficulty,omitempty"`
}

// Avatar names one of the built-in profile avatars.
type Avatar string

const (
	AvatarDunk    Avatar = "dunk"
	AvatarShoot   Avatar = "shoot"
	AvatarDribble Avatar = "dribble"
)

// UserProfile holds the user's display preferences.
type UserProfile struct {
	DisplayName  string `json:"displayName"`
	Avatar       Avatar `json:"avatar"`
	SoundEnabled bool   `json:"soundEnabled"`
}

// DefaultProfile is the profile returned when none has been stored.
func DefaultProfile() UserProfile {
	return UserProfile{
		DisplayName:  "Player",
		Avatar:       AvatarDunk,
		SoundEnabled: true,
	}
}

// ValidAvatar reports whether a is one of the built-in avatars.
func ValidAvatar(a Avatar) bool {
	switch a {
	case AvatarDunk, AvatarShoot, AvatarDribble:
		return true
	}
	return false
}
