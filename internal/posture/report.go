package posture

import "time"

// FrameReport is the outcome of processing a single frame.
type FrameReport struct {
	Seq           int64        `json:"seq"`
	Timestamp     time.Time    `json:"timestamp"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Mode          ExerciseMode `json:"mode"`
	PoseDetected  bool         `json:"poseDetected"`
	ShoulderAngle float64      `json:"shoulderAngle"`
	ElbowAngle    float64      `json:"elbowAngle"`
	Incorrect     bool         `json:"incorrect"`
	Counter       int          `json:"counter"`
	AlarmFired    bool         `json:"alarmFired"`
	Warning       string       `json:"warning,omitempty"`
	Keypoints     Pose         `json:"keypoints,omitempty"`
}

// RelevantAngle returns the angle that the report's mode is judged by.
func (r FrameReport) RelevantAngle() float64 {
	if r.Mode == ModeHandCurl {
		return r.ElbowAngle
	}
	return r.ShoulderAngle
}

// AlarmEvent describes a fired alarm.
type AlarmEvent struct {
	ID            int          `json:"id"`
	Mode          ExerciseMode `json:"mode"`
	FiredAt       time.Time    `json:"firedAt"`
	FrameSeq      int64        `json:"frameSeq"`
	ShoulderAngle float64      `json:"shoulderAngle"`
	ElbowAngle    float64      `json:"elbowAngle"`
}
