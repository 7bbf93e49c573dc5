package shooter

import (
	"math"
	"testing"
)

func TestNewBulletNormalizesSpeed(t *testing.T) {
	tests := []struct {
		name           string
		tx, ty         int
		wantVX, wantVY float64
	}{
		{"right", 500, 300, bulletSpeed, 0},
		{"down", 400, 700, 0, bulletSpeed},
		{"diagonal", 500, 400, bulletSpeed / math.Sqrt2, bulletSpeed / math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBullet(400, 300, tt.tx, tt.ty)
			if b == nil {
				t.Fatal("newBullet returned nil")
			}
			if math.Abs(b.vx-tt.wantVX) > 1e-9 || math.Abs(b.vy-tt.wantVY) > 1e-9 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.vx, b.vy, tt.wantVX, tt.wantVY)
			}
			if speed := math.Hypot(b.vx, b.vy); math.Abs(speed-bulletSpeed) > 1e-9 {
				t.Errorf("speed = %v, want %v", speed, bulletSpeed)
			}
		})
	}
}

func TestNewBulletAtOwnPosition(t *testing.T) {
	if b := newBullet(100, 100, 100, 100); b != nil {
		t.Errorf("newBullet toward its own position = %+v, want nil", b)
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	b := newBullet(10, 300, 0, 300) // heading left
	if b == nil {
		t.Fatal("newBullet returned nil")
	}
	if !b.update() {
		t.Error("bullet reported off screen while still inside")
	}
	if b.update() {
		t.Errorf("bullet at x = %v still reported on screen", b.x)
	}
}
