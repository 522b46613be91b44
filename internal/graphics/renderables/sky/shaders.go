package sky

// GLSL mirror of internal/shading's sky pipeline. One program serves all
// three modes via the uSkyMode uniform; constants must stay in lockstep
// with the Go presets or CPU reference renders drift from GL frames.

const vertexShader = `#version 330 core
out vec2 vUV;
void main() {
	// Buffer-less full-screen triangle strictly covering clip space.
	const vec2 positions[3] = vec2[3](vec2(-1.0, -3.0), vec2(-1.0, 1.0), vec2(3.0, 1.0));
	vec2 p = positions[gl_VertexID];
	vUV = vec2(p.x * 0.5 + 0.5, 0.5 - p.y * 0.5);
	gl_Position = vec4(p, 0.0, 1.0);
}
`

const fragmentShader = `#version 330 core
in vec2 vUV;
out vec4 FragColor;

// 0 = flat gradient, 1 = fixed sun, 2 = dynamic sun + clouds
uniform int uSkyMode;
uniform vec3 uZenith;
uniform vec3 uHorizon;
uniform vec3 uSunColor;
uniform vec2 uSunUV;
uniform float uSunCoreRadius;
uniform float uSunGlowRadius;
uniform float uSunCoreWeight;
uniform float uSunGlowWeight;
uniform vec3 uCloudColor;
uniform float uCloudScale1;
uniform float uCloudScale2;
uniform vec2 uCloudShift1;
uniform vec2 uCloudShift2;
uniform float uCloudLow;
uniform float uCloudHigh;

float hash2(vec2 p) {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

float valueNoise(vec2 uv) {
	vec2 i = floor(uv);
	vec2 f = fract(uv);
	vec2 u = f * f * (3.0 - 2.0 * f);
	float a = hash2(i);
	float b = hash2(i + vec2(1.0, 0.0));
	float c = hash2(i + vec2(0.0, 1.0));
	float d = hash2(i + vec2(1.0, 1.0));
	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y);
}

void main() {
	float t = clamp(vUV.y, 0.0, 1.0);
	vec3 col = mix(uZenith, uHorizon, smoothstep(0.0, 1.0, t));

	if (uSkyMode >= 1) {
		float d = distance(vUV, uSunUV);
		float core = smoothstep(uSunCoreRadius, 0.0, d);
		float glow = smoothstep(uSunGlowRadius, 0.0, d);
		col += uSunColor * (uSunCoreWeight * core + uSunGlowWeight * glow);
	}

	if (uSkyMode >= 2) {
		float n1 = valueNoise(vUV * uCloudScale1 + uCloudShift1);
		float n2 = valueNoise(vUV * uCloudScale2 + uCloudShift2);
		float coverage = 0.65 * n1 + 0.35 * n2;
		float mask = smoothstep(uCloudLow, uCloudHigh, coverage);
		float fade = smoothstep(0.06, 0.22, t) * (1.0 - smoothstep(0.55, 0.8, t));
		col = mix(col, uCloudColor, mask * fade);
	}

	FragColor = vec4(col, 1.0);
}
`
