package voxels

// GLSL mirror of internal/shading's voxel pipeline. The two fragment
// variants share one source with a compile-time variant switch injected by
// shaderSources; the lighting constants are inlined and must match
// shading.DefaultVoxelParams.

const vertexShaderLit = `#version 330 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec3 aNormal;
uniform mat4 uViewProj;
out vec3 vWorldPos;
out vec3 vColor;
out vec3 vNormal;
void main() {
	vWorldPos = aPos;
	vColor = aColor;
	vNormal = aNormal;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const fragmentShaderLit = `#version 330 core
in vec3 vWorldPos;
in vec3 vColor;
in vec3 vNormal;
uniform vec3 uSunDir;
uniform vec3 uCamPos;
out vec4 FragColor;

const float OUTLINE_INNER = 0.018;
const float OUTLINE_OUTER = 0.09;
const float OUTLINE_FLOOR = 0.45;
const vec3 SUN_COLOR = vec3(1.0, 0.96, 0.88);
const vec3 SKY_AMBIENT = vec3(0.45, 0.55, 0.75);
const vec3 BOUNCE_COLOR = vec3(0.5, 0.4, 0.28);
const vec3 FILL_DIR = normalize(vec3(-0.5, -0.3, 0.8));
const vec3 FILL_COLOR = vec3(0.9, 0.85, 0.8);

float edgeDistance(vec2 uv) {
	return min(min(uv.x, 1.0 - uv.x), min(uv.y, 1.0 - uv.y));
}

vec2 cellPlane(vec3 cell, vec3 an) {
	if (an.x >= an.y && an.x >= an.z) {
		return cell.yz;
	} else if (an.y >= an.z) {
		return cell.xz;
	}
	return cell.xy;
}

float planePattern(float a, float b) {
	return 0.5 + 0.25 * sin(a * 7.31 + b * 0.5) + 0.25 * sin(b * 5.17 - a * 0.37);
}

void main() {
	vec3 n = normalize(vNormal);
	vec3 an = abs(n);

	// Ink outline from the distance to the nearest cell edge.
	vec2 cellUV = cellPlane(fract(vWorldPos), an);
	float outline = smoothstep(OUTLINE_INNER, OUTLINE_OUTER, edgeDistance(cellUV));

	// Triplanar albedo variation, weights sharpened and renormalized.
	vec3 w = pow(an, vec3(2.2));
	w /= max(w.x + w.y + w.z, 1e-4);
	float variation = w.x * planePattern(vWorldPos.y, vWorldPos.z)
		+ w.y * planePattern(vWorldPos.x, vWorldPos.z)
		+ w.z * planePattern(vWorldPos.x, vWorldPos.y);
	vec3 albedo = vColor * (0.9 + 0.18 * (variation - 0.5));

	vec3 toSun = -uSunDir;
	float diffuse = max(dot(n, toSun), 0.0);

	vec3 viewDir = normalize(uCamPos - vWorldPos);
	vec3 halfVec = normalize(toSun + viewDir);
	vec3 specular = SUN_COLOR * (pow(max(dot(n, halfVec), 0.0), 32.0) * 0.25);

	vec3 ambient = SKY_AMBIENT * (0.35 + 0.3 * max(n.y, 0.0))
		+ BOUNCE_COLOR * (0.35 * max(-n.y, 0.0));

	float sunShadow = 0.25 + 0.75 * diffuse;
	vec3 fill = FILL_COLOR * (0.2 * max(dot(n, -FILL_DIR), 0.0) * sunShadow);

	float heightFade = clamp(0.5 + vWorldPos.y * 0.03, 0.5, 1.1);

	// Order matters: outline darkens the lit base, specular goes on top.
	vec3 lit = albedo * (ambient + SUN_COLOR * diffuse + fill) * heightFade;
	vec3 final = lit * mix(OUTLINE_FLOOR, 1.0, outline) + specular;
	FragColor = vec4(final, 1.0);
}
`

const vertexShaderFlat = `#version 330 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec2 aFaceUV;
uniform mat4 uViewProj;
out vec3 vColor;
out vec2 vFaceUV;
void main() {
	vColor = aColor;
	vFaceUV = aFaceUV;
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const fragmentShaderFlat = `#version 330 core
in vec3 vColor;
in vec2 vFaceUV;
out vec4 FragColor;

const float FLAT_INNER = 0.02;
const float FLAT_OUTER = 0.1;
const float FLAT_DARKEN = 0.55;

void main() {
	float d = min(min(vFaceUV.x, 1.0 - vFaceUV.x), min(vFaceUV.y, 1.0 - vFaceUV.y));
	float outline = 1.0 - smoothstep(FLAT_INNER, FLAT_OUTER, d);
	vec3 col = mix(vColor, vColor * FLAT_DARKEN, outline);
	FragColor = vec4(col, 1.0);
}
`
