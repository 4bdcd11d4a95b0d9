// Package posture watches a stream of body keypoints and raises an alarm
// when the selected exercise is performed with incorrect form for long enough.
package posture

import "time"

type Landmark string

const (
	LeftShoulder  Landmark = "left_shoulder"
	LeftElbow     Landmark = "left_elbow"
	LeftWrist     Landmark = "left_wrist"
	LeftHip       Landmark = "left_hip"
	RightShoulder Landmark = "right_shoulder"
	RightElbow    Landmark = "right_elbow"
	RightWrist    Landmark = "right_wrist"
	RightHip      Landmark = "right_hip"
)

// Point is a keypoint position in frame pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pose holds the keypoints detected in a single frame.
type Pose map[Landmark]Point

// Frame is one sensor reading. A nil Pose means no person was detected.
type Frame struct {
	Seq       int64     `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Pose      Pose      `json:"pose,omitempty"`
}

// Skeleton lists the keypoint pairs drawn as limbs.
var Skeleton = [][2]Landmark{
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{LeftShoulder, LeftHip},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{RightShoulder, RightHip},
	{LeftShoulder, RightShoulder},
	{LeftHip, RightHip},
}
