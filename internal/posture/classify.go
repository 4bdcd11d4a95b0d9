package posture

const (
	// ShoulderAngleThreshold is the minimum shoulder angle of a correct hand raise.
	ShoulderAngleThreshold = 150.0
	// ElbowAngleThreshold is the maximum elbow angle of a correct hand curl.
	ElbowAngleThreshold = 120.0

	WarningGoodForm  = "Good Form!"
	WarningRaiseHand = "Raise your arm higher"
	WarningCurlArm   = "Curl your arm more"
)

var requiredLandmarks = []Landmark{LeftShoulder, LeftElbow, LeftWrist, LeftHip}

// Measurement holds the joint angles used for classification, in degrees.
type Measurement struct {
	Shoulder float64 `json:"shoulder"`
	Elbow    float64 `json:"elbow"`
}

// Measure computes the left shoulder and elbow angles of the pose. It
// reports false when the pose is missing any of the required keypoints.
func Measure(pose Pose) (Measurement, bool) {
	if pose == nil {
		return Measurement{}, false
	}
	for _, l := range requiredLandmarks {
		if _, ok := pose[l]; !ok {
			return Measurement{}, false
		}
	}

	return Measurement{
		Shoulder: Angle(pose[LeftElbow], pose[LeftShoulder], pose[LeftHip]),
		Elbow:    Angle(pose[LeftWrist], pose[LeftElbow], pose[LeftShoulder]),
	}, true
}

// IsIncorrect evaluates only the angle relevant to mode. Unknown modes
// are never incorrect.
func IsIncorrect(shoulderAngle, elbowAngle float64, mode ExerciseMode) bool {
	switch mode {
	case ModeHandRaise:
		return shoulderAngle < ShoulderAngleThreshold
	case ModeHandCurl:
		return elbowAngle > ElbowAngleThreshold
	default:
		return false
	}
}

func Warning(mode ExerciseMode, incorrect bool) string {
	if !incorrect {
		return WarningGoodForm
	}
	switch mode {
	case ModeHandRaise:
		return WarningRaiseHand
	case ModeHandCurl:
		return WarningCurlArm
	default:
		return WarningGoodForm
	}
}
