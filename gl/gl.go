// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALPHA                          = 0x1906
	ALWAYS                         = 0x207
	ARRAY_BUFFER                   = 0x8892
	BACK                           = 0x405
	BGRA                           = 0x80e1
	BLEND                          = 0xbe2
	BUFFER_SIZE                    = 0x8764
	BYTE                           = 0x1400
	CCW                            = 0x901
	CLAMP_TO_EDGE                  = 0x812f
	COLOR_ATTACHMENT0              = 0x8ce0
	COLOR_BUFFER_BIT               = 0x4000
	COMPRESSED_RGBA_S3TC_DXT1_EXT  = 0x83f1
	COMPRESSED_RGBA_S3TC_DXT3_EXT  = 0x83f2
	COMPRESSED_RGBA_S3TC_DXT5_EXT  = 0x83f3
	CONSTANT_COLOR                 = 0x8001
	CULL_FACE                      = 0xb44
	CW                             = 0x900
	DEBUG_OUTPUT_SYNCHRONOUS       = 0x8242
	DEBUG_SEVERITY_HIGH            = 0x9146
	DEBUG_SEVERITY_LOW             = 0x9148
	DEBUG_SEVERITY_MEDIUM          = 0x9147
	DEBUG_SOURCE_API               = 0x8246
	DEBUG_SOURCE_APPLICATION       = 0x824a
	DEBUG_SOURCE_OTHER             = 0x824b
	DEBUG_SOURCE_SHADER_COMPILER   = 0x8248
	DEBUG_SOURCE_THIRD_PARTY       = 0x8249
	DEBUG_SOURCE_WINDOW_SYSTEM     = 0x8247
	DEBUG_TYPE_DEPRECATED_BEHAVIOR = 0x824d
	DEBUG_TYPE_ERROR               = 0x824c
	DEBUG_TYPE_OTHER               = 0x8251
	DEBUG_TYPE_PERFORMANCE         = 0x8250
	DEBUG_TYPE_PORTABILITY         = 0x824f
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  = 0x824e
	DECR                           = 0x1e03
	DECR_WRAP                      = 0x8508
	DEPTH24_STENCIL8               = 0x88f0
	DEPTH_ATTACHMENT               = 0x8d00
	DEPTH_BUFFER_BIT               = 0x100
	DEPTH_COMPONENT                = 0x1902
	DEPTH_COMPONENT16              = 0x81a5
	DEPTH_COMPONENT24              = 0x81a6
	DEPTH_STENCIL                  = 0x84f9
	DEPTH_STENCIL_ATTACHMENT       = 0x821a
	DEPTH_TEST                     = 0xb71
	DONT_CARE                      = 0x1100
	DRAW_FRAMEBUFFER               = 0x8ca9
	DST_ALPHA                      = 0x304
	DST_COLOR                      = 0x306
	DYNAMIC_DRAW                   = 0x88e8
	ELEMENT_ARRAY_BUFFER           = 0x8893
	EQUAL                          = 0x202
	EXTENSIONS                     = 0x1f03
	FALSE                          = 0
	FILL                           = 0x1b02
	FLOAT                          = 0x1406
	FRAMEBUFFER                    = 0x8d40
	FRAMEBUFFER_COMPLETE           = 0x8cd5
	FRONT                          = 0x404
	FRONT_AND_BACK                 = 0x408
	FUNC_ADD                       = 0x8006
	FUNC_REVERSE_SUBTRACT          = 0x800b
	FUNC_SUBTRACT                  = 0x800a
	GEQUAL                         = 0x206
	GREATER                        = 0x204
	HALF_FLOAT                     = 0x140b
	INCR                           = 0x1e02
	INCR_WRAP                      = 0x8507
	INT                            = 0x1404
	INVERT                         = 0x150a
	KEEP                           = 0x1e00
	LEQUAL                         = 0x203
	LESS                           = 0x201
	LINE                           = 0x1b01
	LINEAR                         = 0x2601
	LINEAR_MIPMAP_LINEAR           = 0x2703
	LINEAR_MIPMAP_NEAREST          = 0x2701
	LINES                          = 0x1
	LINE_STRIP                     = 0x3
	LUMINANCE                      = 0x1909
	LUMINANCE_ALPHA                = 0x190a
	MAX                            = 0x8008
	MAX_DRAW_BUFFERS               = 0x8824
	MAX_TEXTURE_IMAGE_UNITS        = 0x8872
	MAX_TEXTURE_MAX_ANISOTROPY_EXT = 0x84ff
	MAX_TEXTURE_SIZE               = 0xd33
	MAX_VERTEX_ATTRIBS             = 0x8869
	MIN                            = 0x8007
	MIRRORED_REPEAT                = 0x8370
	MULTISAMPLE                    = 0x809d
	NEAREST                        = 0x2600
	NEAREST_MIPMAP_LINEAR          = 0x2702
	NEAREST_MIPMAP_NEAREST         = 0x2700
	NEVER                          = 0x200
	NONE                           = 0
	NOTEQUAL                       = 0x205
	NO_ERROR                       = 0x0
	ONE                            = 0x1
	ONE_MINUS_CONSTANT_COLOR       = 0x8002
	ONE_MINUS_DST_ALPHA            = 0x305
	ONE_MINUS_DST_COLOR            = 0x307
	ONE_MINUS_SRC_ALPHA            = 0x303
	ONE_MINUS_SRC_COLOR            = 0x301
	PACK_ALIGNMENT                 = 0xd05
	POINT                          = 0x1b00
	POINTS                         = 0x0
	POLYGON_OFFSET_FILL            = 0x8037
	QUERY_RESULT                   = 0x8866
	QUERY_RESULT_AVAILABLE         = 0x8867
	R16F                           = 0x822d
	R32F                           = 0x822e
	READ_FRAMEBUFFER               = 0x8ca8
	READ_ONLY                      = 0x88b8
	RED                            = 0x1903
	RENDERBUFFER                   = 0x8d41
	RENDERER                       = 0x1f01
	REPEAT                         = 0x2901
	REPLACE                        = 0x1e01
	RG                             = 0x8227
	RG16                           = 0x822c
	RG16F                          = 0x822f
	RG32F                          = 0x8230
	RGB                            = 0x1907
	RGB10_A2                       = 0x8059
	RGB565                         = 0x8d62
	RGB5_A1                        = 0x8057
	RGBA                           = 0x1908
	RGBA16                         = 0x805b
	RGBA16F                        = 0x881a
	RGBA32F                        = 0x8814
	RGBA4                          = 0x8056
	RGBA8                          = 0x8058
	SAMPLES_PASSED                 = 0x8914
	SCISSOR_TEST                   = 0xc10
	SHORT                          = 0x1402
	SRC_ALPHA                      = 0x302
	SRC_ALPHA_SATURATE             = 0x308
	SRC_COLOR                      = 0x300
	STATIC_DRAW                    = 0x88e4
	STENCIL_ATTACHMENT             = 0x8d20
	STENCIL_BUFFER_BIT             = 0x400
	STENCIL_TEST                   = 0xb90
	STREAM_DRAW                    = 0x88e0
	TEXTURE0                       = 0x84c0
	TEXTURE_2D                     = 0xde1
	TEXTURE_3D                     = 0x806f
	TEXTURE_BASE_LEVEL             = 0x813c
	TEXTURE_CUBE_MAP               = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X    = 0x8515
	TEXTURE_LOD_BIAS               = 0x8501
	TEXTURE_MAG_FILTER             = 0x2800
	TEXTURE_MAX_ANISOTROPY_EXT     = 0x84fe
	TEXTURE_MAX_LEVEL              = 0x813d
	TEXTURE_MIN_FILTER             = 0x2801
	TEXTURE_WRAP_R                 = 0x8072
	TEXTURE_WRAP_S                 = 0x2802
	TEXTURE_WRAP_T                 = 0x2803
	TRIANGLES                      = 0x4
	TRIANGLE_STRIP                 = 0x5
	TRUE                           = 1
	UNPACK_ALIGNMENT               = 0xcf5
	UNSIGNED_BYTE                  = 0x1401
	UNSIGNED_INT                   = 0x1405
	UNSIGNED_INT_24_8              = 0x84fa
	UNSIGNED_INT_2_10_10_10_REV    = 0x8368
	UNSIGNED_SHORT                 = 0x1403
	UNSIGNED_SHORT_4_4_4_4_REV     = 0x8365
	UNSIGNED_SHORT_1_5_5_5_REV     = 0x8366
	UNSIGNED_SHORT_5_6_5           = 0x8363
	VENDOR                         = 0x1f00
	VERSION                        = 0x1f02
	ZERO                           = 0x0
)
